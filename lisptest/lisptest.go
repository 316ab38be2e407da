// Package lisptest provides a harness for evaluating sequences of source
// expressions against their expected rendered results or error conditions.
package lisptest

import (
	"io"
	"testing"

	"github.com/thurn/vow/lisp"
	"github.com/thurn/vow/parser"
)

// TestSequence is a sequence of lisp expressions which are evaluated
// sequentially against a single arena, so earlier define/set! effects are
// visible to later expressions.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the rendered result; ignored when Err is set
	Err    string // the expected error condition, if any
}

// TestSuite is a set of named TestSequences.
type TestSuite []struct {
	Name string
	TestSequence
}

// NewEnv returns an arena configured the way the interpreter binary
// configures one, with print output directed at w.
func NewEnv(w io.Writer) (*lisp.Arena, error) {
	env, err := lisp.NewArena(
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(w),
	)
	if err != nil {
		return nil, err
	}
	env.AddBuiltins()
	env.AddConstants()
	return env, nil
}

// RunTestSuite runs each TestSequence in tests on an isolated arena.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		env, err := NewEnv(io.Discard)
		if err != nil {
			t.Fatalf("test %d %q: %v", i, test.Name, err)
		}
		for j, expr := range test.TestSequence {
			v, err := parser.ParseLVal("test", []byte(expr.Expr))
			if err != nil {
				if cond := condition(err); cond != expr.Err {
					t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				}
				continue
			}
			if len(v) != 1 {
				t.Errorf("test %d %q: expr %d: expected one expression (parsed %d)", i, test.Name, j, len(v))
				continue
			}
			ret := env.Eval(v[0], lisp.RootEnv)
			if expr.Err != "" {
				if ret.Type != lisp.LError || ret.Str != expr.Err {
					t.Errorf("test %d %q: expr %d: expected %s error (got %s)", i, test.Name, j, expr.Err, ret)
				}
				continue
			}
			if ret.Type == lisp.LError {
				t.Errorf("test %d %q: expr %d: unexpected error: %s", i, test.Name, j, ret)
				continue
			}
			if result := ret.String(); result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
		}
	}
}

func condition(err error) string {
	if lerr, ok := err.(*lisp.ErrorVal); ok {
		return lerr.Condition()
	}
	return err.Error()
}
