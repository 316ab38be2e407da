package rdparser

import (
	"github.com/thurn/vow/parser/lexer"
	"github.com/thurn/vow/parser/token"
)

// TokenSource supplies the parser with tokens.  The lexer is the usual
// source; the Interactive parser substitutes a generator that blocks for
// more input.
type TokenSource interface {
	NextToken() *token.Token
}

// TokenGenerator produces batches of tokens on demand.  A generator returns
// nil when no further tokens will become available.
type TokenGenerator func() []*token.Token

// NewTokenStreamSource returns a TokenSource that pulls tokens from read as
// they are needed.
func NewTokenStreamSource(read TokenGenerator) TokenSource {
	return &tokenStreamSource{read: read}
}

type tokenStreamSource struct {
	read TokenGenerator
	buf  []*token.Token
	eof  bool
}

func (s *tokenStreamSource) NextToken() *token.Token {
	for len(s.buf) == 0 {
		if s.eof {
			return &token.Token{Type: token.EOF, Source: &token.Location{}}
		}
		s.buf = s.read()
		if s.buf == nil {
			s.eof = true
		}
	}
	tok := s.buf[0]
	s.buf = s.buf[1:]
	return tok
}

// discard drops any buffered tokens, typically the remainder of a line that
// failed to parse.
func (s *tokenStreamSource) discard() {
	s.buf = nil
}

var _ TokenSource = (*lexer.Lexer)(nil)
