/*
Package parser provides the lisp reader.

	expr    := '(' <expr>* ')' | <marker> <expr> | <word> | <string>
	marker  := "'" | "`" | "," | ",@"
	string  := '"' <strcontent>* '"'
	word    := a maximal run of characters that is not whitespace or a
	           delimiter; classified as #t/#f, a real number, a complex
	           number, or a symbol, in that order
*/
package parser

import (
	"bytes"

	"github.com/thurn/vow/lisp"
	"github.com/thurn/vow/parser/rdparser"
	"github.com/thurn/vow/parser/token"
)

// NewReader returns a lisp.Reader to use in a lisp.Arena.
func NewReader() lisp.Reader {
	return rdparser.NewReader()
}

// ParseLVal parses all expressions in text and returns them.
func ParseLVal(name string, text []byte) ([]*lisp.LVal, error) {
	s := token.NewScanner(name, bytes.NewReader(text))
	return rdparser.New(s).ParseProgram()
}
