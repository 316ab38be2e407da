package lisp

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (env *Arena) call(t *testing.T, name string, args ...*LVal) *LVal {
	f := env.Resolve(RootEnv, name)
	require.Equal(t, LFun, f.Type, "builtin %s", name)
	return env.Invoke(f, SExpr(args))
}

func TestArithmetic(t *testing.T) {
	env := newTestEnv(t)

	assert.Equal(t, float64(3), env.call(t, "+", Number(1), Number(2)).Num)
	assert.Equal(t, float64(-1), env.call(t, "-", Number(1), Number(2)).Num)
	assert.Equal(t, float64(42), env.call(t, "*", Number(6), Number(7)).Num)
	assert.Equal(t, 0.5, env.call(t, "/", Number(1), Number(2)).Num)

	// Division by zero follows float64 semantics.
	v := env.call(t, "/", Number(1), Number(0))
	require.Equal(t, LNumber, v.Type)
	assert.True(t, math.IsInf(v.Num, 1))

	v = env.call(t, "+", Number(1), String("a"))
	assert.Equal(t, LError, v.Type)
	assert.Equal(t, TypeMismatch, v.Str)
}

func TestArithmeticComplex(t *testing.T) {
	env := newTestEnv(t)

	// A complex operand widens the other operand and the result.
	v := env.call(t, "+", Number(1), Complex(2i))
	require.Equal(t, LComplex, v.Type)
	assert.Equal(t, 1+2i, v.Cmplx)

	v = env.call(t, "*", Complex(1i), Complex(1i))
	require.Equal(t, LComplex, v.Type)
	assert.Equal(t, complex(-1, 0), v.Cmplx)

	v = env.call(t, "abs", Complex(3+4i))
	require.Equal(t, LNumber, v.Type)
	assert.Equal(t, float64(5), v.Num)

	// Ordered comparison is defined for reals only.
	v = env.call(t, "<", Complex(1i), Number(1))
	assert.Equal(t, LError, v.Type)
	assert.Equal(t, TypeMismatch, v.Str)
}

func TestNumericBuiltins(t *testing.T) {
	env := newTestEnv(t)

	assert.Equal(t, 4.5, env.call(t, "abs", Number(-4.5)).Num)
	assert.Equal(t, float64(1024), env.call(t, "expt", Number(2), Number(10)).Num)
	assert.Equal(t, float64(3), env.call(t, "round", Number(2.5)).Num)
	assert.Equal(t, float64(-2), env.call(t, "round", Number(-2.4)).Num)
	assert.Equal(t, float64(1), env.call(t, "min", Number(3), Number(1), Number(2)).Num)
	assert.Equal(t, float64(3), env.call(t, "max", Number(3), Number(1), Number(2)).Num)
}

func TestComparisons(t *testing.T) {
	env := newTestEnv(t)

	assert.True(t, env.call(t, "<", Number(1), Number(2)).Bln)
	assert.False(t, env.call(t, "<", Number(2), Number(2)).Bln)
	assert.True(t, env.call(t, "<=", Number(2), Number(2)).Bln)
	assert.False(t, env.call(t, ">", Number(1), Number(2)).Bln)
	assert.True(t, env.call(t, ">=", Number(2), Number(2)).Bln)
	assert.True(t, env.call(t, "=", Number(2), Number(2)).Bln)
	assert.False(t, env.call(t, "=", Number(2), Number(3)).Bln)
}

func TestListBuiltins(t *testing.T) {
	env := newTestEnv(t)

	lis := env.call(t, "list", Number(1), Number(2), Number(3))
	require.Equal(t, LSExpr, lis.Type)
	assert.Equal(t, "(1 2 3)", lis.String())

	assert.Equal(t, float64(1), env.call(t, "car", lis).Num)
	assert.Equal(t, "(2 3)", env.call(t, "cdr", lis).String())
	assert.Equal(t, "()", env.call(t, "cdr", Nil()).String())
	assert.Equal(t, "(0 1 2 3)", env.call(t, "cons", Number(0), lis).String())
	assert.Equal(t, "(1 2 3 1 2 3)", env.call(t, "append", lis, Nil(), lis).String())
	assert.Equal(t, float64(3), env.call(t, "length", lis).Num)
	assert.True(t, env.call(t, "null?", Nil()).Bln)
	assert.False(t, env.call(t, "null?", lis).Bln)
	assert.True(t, env.call(t, "list?", lis).Bln)
	assert.False(t, env.call(t, "list?", Number(1)).Bln)

	v := env.call(t, "car", Nil())
	assert.Equal(t, LError, v.Type)
	assert.Equal(t, TypeMismatch, v.Str)

	// cons does not build dotted pairs.
	v = env.call(t, "cons", Number(1), Number(2))
	assert.Equal(t, LError, v.Type)
	assert.Equal(t, TypeMismatch, v.Str)
}

func TestApply(t *testing.T) {
	env := newTestEnv(t)

	plus := env.Resolve(RootEnv, "+")
	v := env.call(t, "apply", plus, SExpr([]*LVal{Number(1), Number(2)}))
	require.Equal(t, LNumber, v.Type)
	assert.Equal(t, float64(3), v.Num)

	// Loose arguments and list arguments are flattened together.
	max := env.Resolve(RootEnv, "max")
	v = env.call(t, "apply", max, Number(1), SExpr([]*LVal{Number(5), Number(2)}))
	assert.Equal(t, float64(5), v.Num)

	v = env.call(t, "apply", Number(1), Nil())
	assert.Equal(t, LError, v.Type)
	assert.Equal(t, NotCallable, v.Str)
}

func TestMap(t *testing.T) {
	env := newTestEnv(t)

	double := Lambda(Formals("x"), SExpr([]*LVal{Symbol("+"), Symbol("x"), Symbol("x")}), RootEnv)
	v := env.call(t, "map", double, SExpr([]*LVal{Number(1), Number(2), Number(3)}))
	require.Equal(t, LSExpr, v.Type)
	assert.Equal(t, "(2 4 6)", v.String())

	assert.Equal(t, "()", env.call(t, "map", double, Nil()).String())

	v = env.call(t, "map", double, SExpr([]*LVal{Number(1), String("a")}))
	assert.Equal(t, LError, v.Type)
	assert.Equal(t, TypeMismatch, v.Str)
}

func TestPredicates(t *testing.T) {
	env := newTestEnv(t)

	assert.True(t, env.call(t, "number?", Number(1)).Bln)
	// number? identifies reals; a complex value is not a number in this
	// sense.
	assert.False(t, env.call(t, "number?", Complex(1i)).Bln)
	assert.False(t, env.call(t, "number?", Symbol("a")).Bln)
	assert.True(t, env.call(t, "symbol?", Symbol("a")).Bln)
	assert.False(t, env.call(t, "symbol?", String("a")).Bln)
	assert.True(t, env.call(t, "procedure?", env.Resolve(RootEnv, "car")).Bln)
	assert.False(t, env.call(t, "procedure?", Symbol("car")).Bln)

	assert.False(t, env.call(t, "not", Bool(true)).Bln)
	assert.True(t, env.call(t, "not", Nil()).Bln)
	v := env.call(t, "not", Number(1))
	assert.Equal(t, LError, v.Type)
	assert.Equal(t, TypeMismatch, v.Str)
}

func TestBegin(t *testing.T) {
	env := newTestEnv(t)

	assert.Equal(t, float64(3), env.call(t, "begin", Number(1), Number(2), Number(3)).Num)
	assert.True(t, env.call(t, "begin").IsNil())
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	env, err := NewArena(WithStdout(&buf))
	require.NoError(t, err)
	env.AddBuiltins()

	v := env.call(t, "print", Number(1), Symbol("a"), SExpr([]*LVal{Number(2)}))
	assert.True(t, v.IsNil())
	assert.Equal(t, "1 a (2)\n", buf.String())

	buf.Reset()
	env.call(t, "print")
	assert.Equal(t, "\n", buf.String())
}
