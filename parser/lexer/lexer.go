package lexer

import (
	"io"
	"strings"
	"unicode"

	"github.com/thurn/vow/parser/token"
)

// wordDelimiters terminate a word token.  Quote marks can never appear
// inside a word because each one starts a token of its own.
const wordDelimiters = "()\"'`,;"

// ErrUnterminatedString is the message text of the ERROR token emitted when
// a string literal is not closed before the end of its line.
const ErrUnterminatedString = "unterminated string literal"

// Lexer scans tokens from a character stream.
type Lexer struct {
	scanner *token.Scanner
	ch      rune // current unicode rune

	readErr error
}

func New(s *token.Scanner) *Lexer {
	return &Lexer{
		scanner: s,
	}
}

// NextToken scans and returns the next token of input.  At the end of the
// stream NextToken returns an EOF token; after an error it returns ERROR
// tokens.
func (lex *Lexer) NextToken() *token.Token {
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	lex.readErr = lex.skipWhitespace()
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	if err := lex.readChar(); err != nil {
		return lex.emitError(err, true)
	}
	switch lex.ch {
	case '(':
		return lex.scanner.EmitToken(token.PAREN_L)
	case ')':
		return lex.scanner.EmitToken(token.PAREN_R)
	case '\'':
		return lex.scanner.EmitToken(token.QUOTE)
	case '`':
		return lex.scanner.EmitToken(token.QUASIQUOTE)
	case ',':
		if lex.peekRune() == '@' {
			if err := lex.readChar(); err != nil {
				return lex.emitError(err, false)
			}
			return lex.scanner.EmitToken(token.UNQUOTE_SPLICING)
		}
		return lex.scanner.EmitToken(token.UNQUOTE)
	case ';':
		return lex.readComment()
	case '"':
		return lex.readString()
	default:
		return lex.readWord()
	}
}

// readComment consumes the remainder of the line.  The comment text is
// emitted as a token and discarded by the parser.
func (lex *Lexer) readComment() *token.Token {
	for {
		c, ok := lex.scanner.Peek()
		if !ok || c == '\n' {
			return lex.scanner.EmitToken(token.COMMENT)
		}
		if err := lex.readChar(); err != nil {
			return lex.emitError(err, false)
		}
	}
}

// readString consumes a double-quoted string literal.  A backslash keeps
// the following rune verbatim; escape sequences are not decoded.  String
// literals cannot span lines.
func (lex *Lexer) readString() *token.Token {
	for {
		if _, ok := lex.scanner.Peek(); !ok {
			return lex.emit(token.ERROR, ErrUnterminatedString)
		}
		if err := lex.readChar(); err != nil {
			return lex.emitError(err, false)
		}
		switch lex.ch {
		case '"':
			return lex.scanner.EmitToken(token.STRING)
		case '\n':
			return lex.emit(token.ERROR, ErrUnterminatedString)
		case '\\':
			if _, ok := lex.scanner.Peek(); !ok {
				return lex.emit(token.ERROR, ErrUnterminatedString)
			}
			if err := lex.readChar(); err != nil {
				return lex.emitError(err, false)
			}
			if lex.ch == '\n' {
				return lex.emit(token.ERROR, ErrUnterminatedString)
			}
		}
	}
}

// readWord consumes a maximal run of characters excluding whitespace and
// delimiters.  The parser classifies the text as a boolean, number, complex
// number, or symbol.
func (lex *Lexer) readWord() *token.Token {
	for {
		c, ok := lex.scanner.Peek()
		if !ok || unicode.IsSpace(c) || strings.ContainsRune(wordDelimiters, c) {
			return lex.scanner.EmitToken(token.WORD)
		}
		if err := lex.readChar(); err != nil {
			return lex.emitError(err, false)
		}
	}
}

func (lex *Lexer) emit(typ token.Type, text string) *token.Token {
	tok := &token.Token{
		Type:   typ,
		Text:   text,
		Source: lex.scanner.LocStart(),
	}
	lex.scanner.Ignore()
	return tok
}

func (lex *Lexer) emitError(err error, expectEOF bool) *token.Token {
	if err == io.EOF {
		if expectEOF {
			return lex.emit(token.EOF, "")
		}
		return lex.emit(token.ERROR, "unexpected EOF")
	}
	return lex.emit(token.ERROR, err.Error())
}

func (lex *Lexer) skipWhitespace() error {
	for {
		c, ok := lex.scanner.Peek()
		if !ok || !unicode.IsSpace(c) {
			break
		}
		if err := lex.readChar(); err != nil {
			return err
		}
	}
	lex.scanner.Ignore()
	return nil
}

func (lex *Lexer) peekRune() rune {
	r, _ := lex.scanner.Peek()
	return r
}

func (lex *Lexer) readChar() error {
	err := lex.scanner.ScanRune()
	if err != nil {
		lex.readErr = err
		return err
	}
	lex.ch = lex.scanner.Rune()
	return nil
}
