package lisp

import (
	"io"
	"strings"
)

// Reader abstracts the parser so that it may be implemented in a separate
// package as a swappable component.
type Reader interface {
	// Read the contents of r and return the sequence of LVals that it
	// contains.
	Read(name string, r io.Reader) ([]*LVal, error)
}

// Load reads all expressions from r and evaluates them in order against the
// root frame.  The value of the last expression is returned; evaluation
// stops at the first error.
func (env *Arena) Load(name string, r io.Reader) *LVal {
	if env.Reader == nil {
		return ErrorConditionf(UnexpectedEOF, "no reader configured")
	}
	exprs, err := env.Reader.Read(name, r)
	if err != nil {
		if lerr, ok := err.(*ErrorVal); ok {
			return (*LVal)(lerr)
		}
		return ErrorCondition(UnexpectedEOF, err)
	}
	ret := Nil()
	for _, expr := range exprs {
		ret = env.Eval(expr, RootEnv)
		if ret.Type == LError {
			return ret
		}
	}
	return ret
}

// LoadString is Load for an in-memory source string.
func (env *Arena) LoadString(name string, source string) *LVal {
	return env.Load(name, strings.NewReader(source))
}
