package rdparser

import (
	"io"
	"strconv"

	"github.com/thurn/vow/lisp"
	"github.com/thurn/vow/parser/lexer"
	"github.com/thurn/vow/parser/token"
)

type reader struct{}

// NewReader returns a lisp.Reader to use in a lisp.Arena.
func NewReader() lisp.Reader {
	return &reader{}
}

// Read implements lisp.Reader.
func (*reader) Read(name string, r io.Reader) ([]*lisp.LVal, error) {
	s := token.NewScanner(name, r)
	return New(s).ParseProgram()
}

// Parser is a recursive descent parser over a token stream.
type Parser struct {
	src     TokenSource
	parsing bool
}

// New initializes and returns a new Parser that reads tokens from scanner.
func New(scanner *token.Scanner) *Parser {
	return NewFromSource(lexer.New(scanner))
}

// NewFromSource initializes and returns a new Parser that reads tokens from
// src.
func NewFromSource(src TokenSource) *Parser {
	return &Parser{src: src}
}

// ParseProgram parses expressions until the end of the token stream and
// returns them.
func (p *Parser) ParseProgram() ([]*lisp.LVal, error) {
	var exprs []*lisp.LVal

	for {
		expr := p.ParseExpression()
		if expr == nil {
			break
		}
		if expr.Type == lisp.LError {
			return nil, lisp.GoError(expr)
		}
		exprs = append(exprs, expr)
	}

	return exprs, nil
}

// ParseExpression parses a single expression from the token stream.  It
// returns nil when the stream ends cleanly before an expression starts; an
// end of stream inside an expression produces an unexpected-eof error
// value.
func (p *Parser) ParseExpression() *lisp.LVal {
	defer func() { p.parsing = false }()
	tok := p.next()
	if tok.Type == token.EOF {
		return nil
	}
	return p.parseExpression(tok)
}

// IsParsing returns true while p is in the middle of an expression, with
// tokens consumed but the expression not yet complete.
func (p *Parser) IsParsing() bool {
	return p.parsing
}

// parseExpression parses the expression starting at tok.  The parser never
// reads beyond the last token of the expression, so an interactive source
// does not block once a complete form has been consumed.
func (p *Parser) parseExpression(tok *token.Token) *lisp.LVal {
	p.parsing = true
	switch tok.Type {
	case token.PAREN_L:
		return p.parseList(tok)
	case token.PAREN_R:
		return p.errorf(tok, lisp.UnexpectedCloseParen, "unexpected %s", tok.Type)
	case token.QUOTE:
		return p.parseShorthand(tok, lisp.SymQuote)
	case token.QUASIQUOTE:
		return p.parseShorthand(tok, lisp.SymQuasiquote)
	case token.UNQUOTE:
		return p.parseShorthand(tok, lisp.SymUnquote)
	case token.UNQUOTE_SPLICING:
		return p.parseShorthand(tok, lisp.SymUnquoteSplicing)
	case token.STRING:
		return p.parseString(tok)
	case token.WORD:
		return p.parseWord(tok)
	case token.EOF:
		return p.errorf(tok, lisp.UnexpectedEOF, "unexpected EOF")
	case token.ERROR, token.INVALID:
		return p.scanError(tok)
	default:
		return p.errorf(tok, lisp.UnexpectedEOF, "unexpected %s", tok.Type)
	}
}

// parseList parses expressions until the paren opened at open is matched.
func (p *Parser) parseList(open *token.Token) *lisp.LVal {
	expr := lisp.SExpr(nil)
	expr.Source = open.Source
	for {
		tok := p.next()
		switch tok.Type {
		case token.PAREN_R:
			return expr
		case token.EOF:
			return p.errorf(open, lisp.UnexpectedEOF, "unmatched %s", open.Text)
		}
		x := p.parseExpression(tok)
		if x.Type == lisp.LError {
			return x
		}
		expr.Cells = append(expr.Cells, x)
	}
}

// parseShorthand parses the expression following a quote-shorthand marker
// and wraps it in a two-element list headed by sym.
func (p *Parser) parseShorthand(marker *token.Token, sym string) *lisp.LVal {
	tok := p.next()
	if tok.Type == token.EOF {
		return p.errorf(marker, lisp.UnexpectedEOF, "%s is not followed by an expression", marker.Type)
	}
	x := p.parseExpression(tok)
	if x.Type == lisp.LError {
		return x
	}
	head := lisp.Symbol(sym)
	head.Source = marker.Source
	expr := lisp.SExpr([]*lisp.LVal{head, x})
	expr.Source = marker.Source
	return expr
}

func (p *Parser) parseString(tok *token.Token) *lisp.LVal {
	text := tok.Text
	// The token includes the surrounding quotes; the contents are kept
	// verbatim, escape sequences and all.
	v := lisp.String(text[1 : len(text)-1])
	v.Source = tok.Source
	return v
}

// parseWord classifies a word token, trying each literal interpretation in
// priority order before falling back to a symbol.
func (p *Parser) parseWord(tok *token.Token) *lisp.LVal {
	var v *lisp.LVal
	switch {
	case tok.Text == "#t":
		v = lisp.Bool(true)
	case tok.Text == "#f":
		v = lisp.Bool(false)
	default:
		if x, err := strconv.ParseFloat(tok.Text, 64); err == nil {
			v = lisp.Number(x)
			break
		}
		if x, err := strconv.ParseComplex(tok.Text, 128); err == nil {
			v = lisp.Complex(x)
			break
		}
		v = lisp.Symbol(tok.Text)
	}
	v.Source = tok.Source
	return v
}

func (p *Parser) scanError(tok *token.Token) *lisp.LVal {
	if tok.Text == lexer.ErrUnterminatedString {
		return p.errorf(tok, lisp.UnterminatedString, "%s", tok.Text)
	}
	return p.errorf(tok, "scan-error", "%s", tok.Text)
}

// next returns the next token, skipping comments.
func (p *Parser) next() *token.Token {
	for {
		tok := p.src.NextToken()
		if tok.Type != token.COMMENT {
			return tok
		}
	}
}

func (p *Parser) errorf(tok *token.Token, condition string, format string, v ...interface{}) *lisp.LVal {
	lerr := lisp.ErrorConditionf(condition, "%s: "+format, append([]interface{}{tok.Source}, v...)...)
	lerr.Source = tok.Source
	return lerr
}
