package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLValString(t *testing.T) {
	tests := []struct {
		v    *LVal
		want string
	}{
		{Symbol("abc"), "abc"},
		{Number(1), "1"},
		{Number(-2.5), "-2.5"},
		{Number(0.5), "0.5"},
		// Rendering never switches to scientific notation.
		{Number(3628800), "3628800"},
		{Number(1e21), "1000000000000000000000"},
		{Number(0.000001), "0.000001"},
		{Complex(3 + 4i), "3+4i"},
		{Complex(2i), "0+2i"},
		{Complex(-1), "-1+0i"},
		{Bool(true), "#t"},
		{Bool(false), "#f"},
		{String("abc"), `"abc"`},
		{String(`a \"b\" c`), `"a \"b\" c"`},
		{Nil(), "()"},
		{SExpr([]*LVal{Number(1), Symbol("x"), Nil()}), "(1 x ())"},
		{Fun("car", builtinCAR), "<builtin ``car''>"},
		{Lambda(Formals("x"), Symbol("x"), RootEnv), "(lambda (x) x)"},
		{ErrorConditionf(TypeMismatch, "car: bad argument"), "type-mismatch: car: bad argument"},
	}
	for i, test := range tests {
		assert.Equal(t, test.want, test.v.String(), "test %d", i)
	}
}

func TestLValEqual(t *testing.T) {
	assert.True(t, Number(1).Equal(Number(1)))
	assert.False(t, Number(1).Equal(Number(2)))
	assert.False(t, Number(1).Equal(Symbol("1")))
	assert.True(t, Symbol("a").Equal(Symbol("a")))
	assert.False(t, Symbol("a").Equal(String("a")))
	assert.True(t, String("a").Equal(String("a")))
	assert.True(t, Complex(1+2i).Equal(Complex(1+2i)))
	assert.False(t, Complex(1).Equal(Number(1)))
	assert.True(t, Bool(true).Equal(Bool(true)))
	assert.False(t, Bool(true).Equal(Bool(false)))

	a := SExpr([]*LVal{Number(1), SExpr([]*LVal{Symbol("x")})})
	b := SExpr([]*LVal{Number(1), SExpr([]*LVal{Symbol("x")})})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(Nil()))
	assert.False(t, a.Equal(SExpr([]*LVal{Number(1)})))

	// Functions never compare equal, not even to themselves.
	f := Fun("car", builtinCAR)
	assert.False(t, f.Equal(f))
	g := Lambda(Formals("x"), Symbol("x"), RootEnv)
	assert.False(t, g.Equal(g))
}

func TestIsNil(t *testing.T) {
	assert.True(t, Nil().IsNil())
	assert.True(t, SExpr(nil).IsNil())
	assert.False(t, SExpr([]*LVal{Number(1)}).IsNil())
	assert.False(t, Number(0).IsNil())
}
