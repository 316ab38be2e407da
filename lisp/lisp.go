package lisp

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/thurn/vow/parser/token"
)

// LType is the type of an LVal.
type LType uint

// Possible LType values.
const (
	LInvalid LType = iota
	LSymbol
	LNumber
	LComplex
	LBool
	LString
	LSExpr
	LFun
	LError

	numLTypes
)

var ltypeStrings = [numLTypes]string{
	LInvalid: "INVALID",
	LSymbol:  "symbol",
	LNumber:  "number",
	LComplex: "complex",
	LBool:    "bool",
	LString:  "string",
	LSExpr:   "list",
	LFun:     "function",
	LError:   "error",
}

func (t LType) String() string {
	if t >= numLTypes {
		return ltypeStrings[LInvalid]
	}
	return ltypeStrings[t]
}

// LBuiltin is a native function over already-evaluated arguments.  Builtins
// that re-enter evaluation (apply, map) do so through env.Invoke.
type LBuiltin func(env *Arena, args *LVal) *LVal

// LBuiltinDef describes a builtin function so that it can be registered into
// the root frame of an Arena.
type LBuiltinDef interface {
	Name() string
	Formals() *LVal
	Eval(env *Arena, args *LVal) *LVal
}

// LVal is a lisp value.  Exactly one interpretation applies, selected by
// Type: symbols and strings use Str, numbers use Num, complex numbers use
// Cmplx, booleans use Bln, lists use Cells, and functions use either Builtin
// (native) or Formals/Body/Env (closure).
type LVal struct {
	Type   LType
	Num    float64
	Cmplx  complex128
	Str    string
	Bln    bool
	Err    error
	Cells  []*LVal
	Source *token.Location

	// Function values.  A closure does not own its captured frame -- it
	// holds the arena id of the frame that was active when the lambda was
	// evaluated.  Multiple closures may share a captured frame.
	Builtin LBuiltin
	Formals *LVal
	Body    *LVal
	Env     EnvID
}

// Symbol returns an LVal representing the symbol s.
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// Number returns an LVal representing the real number x.
func Number(x float64) *LVal {
	return &LVal{
		Type: LNumber,
		Num:  x,
	}
}

// Complex returns an LVal representing the complex number x.
func Complex(x complex128) *LVal {
	return &LVal{
		Type:  LComplex,
		Cmplx: x,
	}
}

// Bool returns an LVal representing the boolean b.
func Bool(b bool) *LVal {
	return &LVal{
		Type: LBool,
		Bln:  b,
	}
}

// String returns an LVal representing the string literal s.  String contents
// are stored exactly as written in the source, escape sequences are not
// decoded.
func String(s string) *LVal {
	return &LVal{
		Type: LString,
		Str:  s,
	}
}

// SExpr returns an LVal representing a list with the given cells.
func SExpr(cells []*LVal) *LVal {
	return &LVal{
		Type:  LSExpr,
		Cells: cells,
	}
}

// Nil returns an LVal representing the empty list.
func Nil() *LVal {
	return SExpr(nil)
}

// Fun returns an LVal representing the native function fn.  The name is used
// only when rendering the value.
func Fun(name string, fn LBuiltin) *LVal {
	return &LVal{
		Type:    LFun,
		Str:     name,
		Builtin: fn,
	}
}

// Lambda returns a closure with the given formals and unevaluated body which
// captures the frame env.
func Lambda(formals *LVal, body *LVal, env EnvID) *LVal {
	return &LVal{
		Type:    LFun,
		Formals: formals,
		Body:    body,
		Env:     env,
	}
}

// IsNil returns true if v is the empty list.
func (v *LVal) IsNil() bool {
	return v.Type == LSExpr && len(v.Cells) == 0
}

// Len returns the number of cells in v.
func (v *LVal) Len() int {
	return len(v.Cells)
}

// Equal implements the structural equality used by the equal? builtin.
// Atoms are equal iff they have the same type and value.  Lists are equal
// iff they have the same length and pairwise-equal cells.  Function values
// are never equal to anything, including themselves.
func (v *LVal) Equal(u *LVal) bool {
	if v.Type != u.Type {
		return false
	}
	switch v.Type {
	case LSymbol, LString:
		return v.Str == u.Str
	case LNumber:
		return v.Num == u.Num
	case LComplex:
		return v.Cmplx == u.Cmplx
	case LBool:
		return v.Bln == u.Bln
	case LSExpr:
		if len(v.Cells) != len(u.Cells) {
			return false
		}
		for i := range v.Cells {
			if !v.Cells[i].Equal(u.Cells[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (v *LVal) String() string {
	switch v.Type {
	case LSymbol:
		return v.Str
	case LNumber:
		// Plain decimal notation, never scientific, so large integral
		// results read back the way a user wrote them.
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case LComplex:
		return formatComplex(v.Cmplx)
	case LBool:
		if v.Bln {
			return "#t"
		}
		return "#f"
	case LString:
		return `"` + v.Str + `"`
	case LSExpr:
		return exprString(v, "(", ")")
	case LFun:
		if v.Builtin != nil {
			return fmt.Sprintf("<builtin ``%s''>", v.Str)
		}
		return fmt.Sprintf("(lambda %v %v)", v.Formals, v.Body)
	case LError:
		return v.Str + ": " + v.Err.Error()
	default:
		return fmt.Sprintf("%#v", v)
	}
}

// formatComplex renders x in the same a+bi form that the reader accepts.
// strconv wraps complex values in parentheses, which would read back as an
// application.
func formatComplex(x complex128) string {
	s := strconv.FormatComplex(x, 'f', -1, 128)
	return strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
}

func exprString(v *LVal, left string, right string) string {
	if len(v.Cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range v.Cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}
