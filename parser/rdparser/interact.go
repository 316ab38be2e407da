package rdparser

import (
	"io"

	"github.com/thurn/vow/lisp"
	"github.com/thurn/vow/parser/token"
)

// Interactive is a parser that parses a single expression at a time and
// defers to a TokenGenerator when it is necessary to read more tokens.  A
// REPL supplies a generator that blocks on the terminal.
type Interactive struct {
	Read TokenGenerator
	src  *tokenStreamSource
	p    *Parser
}

// NewInteractive initializes and returns a new Interactive parser.
func NewInteractive(read TokenGenerator) *Interactive {
	p := &Interactive{Read: read}
	p.src = &tokenStreamSource{read: func() []*token.Token {
		return p.Read()
	}}
	p.p = NewFromSource(p.src)
	return p
}

// Prompt returns a prompt reflecting the parser state, for use by a REPL
// token generator.
func (p *Interactive) Prompt() string {
	if p.IsParsing() {
		return "  "
	}
	return "> "
}

// IsParsing returns true if p is in the middle of parsing an expression.
func (p *Interactive) IsParsing() bool {
	if p == nil {
		return false
	}
	return p.p.IsParsing()
}

// ParseExpression parses one expression from the interactive token stream
// and returns it.  A REPL calls this function in its main runloop.  It
// returns io.EOF when the token stream has ended; if a parse error is
// encountered any buffered tokens (presumably from the current line) are
// discarded so that corrected source can be re-read.
func (p *Interactive) ParseExpression() (*lisp.LVal, error) {
	lval := p.p.ParseExpression()
	if lval == nil {
		return nil, io.EOF
	}
	if err := lisp.GoError(lval); err != nil {
		p.src.discard()
		return nil, err
	}
	return lval, nil
}
