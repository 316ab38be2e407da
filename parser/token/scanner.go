package token

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"
)

// Scanner facilitates construction of tokens from a character stream
// (io.Reader).  Runes scanned since the last call to EmitToken or Ignore
// form the text of the current token.
type Scanner struct {
	file string
	br   *bufio.Reader

	buf []rune // text of the current token
	c   rune   // current rune, the last rune scanned

	pos  int // rune offset of the next rune
	line int // line number of the next rune
	col  int // column number of the next rune

	startPos  int // position at the first rune of the token
	startLine int
	startCol  int
}

// NewScanner initializes and returns a new Scanner.
func NewScanner(file string, r io.Reader) *Scanner {
	return &Scanner{
		file: file,
		br:   bufio.NewReader(r),
		line: 1,
		col:  1,
	}
}

// EmitToken returns a token containing the text scanned since the last call
// to either EmitToken or Ignore.
func (s *Scanner) EmitToken(typ Type) *Token {
	tok := &Token{
		Type:   typ,
		Text:   s.Text(),
		Source: s.LocStart(),
	}
	s.Ignore()
	return tok
}

// Ignore causes the scanner to discard all text scanned since the last call
// to either EmitToken or Ignore.
func (s *Scanner) Ignore() {
	s.buf = s.buf[:0]
}

// Text returns the text scanned since the last call to either EmitToken or
// Ignore.
func (s *Scanner) Text() string {
	return string(s.buf)
}

// Rune returns the current rune, the last rune included in the current
// token.
func (s *Scanner) Rune() rune {
	return s.c
}

// Peek returns the next rune to be scanned, if there is one.  If EOF or an
// invalid utf-8 sequence prevents further runes from being scanned Peek
// returns a false second value.
func (s *Scanner) Peek() (rune, bool) {
	c, _, err := s.br.ReadRune()
	if err != nil {
		return 0, false
	}
	_ = s.br.UnreadRune()
	if c == utf8.RuneError {
		return utf8.RuneError, false
	}
	return c, true
}

// ScanRune scans one rune from the input for inclusion in the current
// token.  It returns io.EOF at the end of the stream.
func (s *Scanner) ScanRune() error {
	c, n, err := s.br.ReadRune()
	if err != nil {
		return err
	}
	if c == utf8.RuneError && n == 1 {
		return fmt.Errorf("invalid utf-8 sequence in source text at %s", s.Loc())
	}
	if len(s.buf) == 0 {
		s.startPos = s.pos
		s.startLine = s.line
		s.startCol = s.col
	}
	s.buf = append(s.buf, c)
	s.c = c
	s.pos++
	if c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return nil
}

// LocStart returns a Location referencing the beginning of the current
// token, just beyond the end of the previous token.
func (s *Scanner) LocStart() *Location {
	if len(s.buf) == 0 {
		return s.Loc()
	}
	return &Location{
		File: s.file,
		Pos:  s.startPos,
		Line: s.startLine,
		Col:  s.startCol,
	}
}

// Loc returns a Location referencing the position of the next rune to be
// scanned.
func (s *Scanner) Loc() *Location {
	return &Location{
		File: s.file,
		Pos:  s.pos,
		Line: s.line,
		Col:  s.col,
	}
}
