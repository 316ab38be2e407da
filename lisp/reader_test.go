package lisp

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReader returns a fixed program regardless of input.
type stubReader struct {
	exprs []*LVal
	err   error
}

func (r *stubReader) Read(name string, _ io.Reader) ([]*LVal, error) {
	return r.exprs, r.err
}

func TestLoad(t *testing.T) {
	program := []*LVal{
		SExpr([]*LVal{Symbol("define"), Symbol("x"), Number(2)}),
		SExpr([]*LVal{Symbol("*"), Symbol("x"), Symbol("x")}),
	}
	env, err := NewArena(WithReader(&stubReader{exprs: program}))
	require.NoError(t, err)
	env.AddBuiltins()

	// The last expression's value comes back and earlier defines stick.
	v := env.LoadString("test", "")
	require.Equal(t, LNumber, v.Type)
	assert.Equal(t, float64(4), v.Num)
	assert.Equal(t, float64(2), env.Resolve(RootEnv, "x").Num)
}

func TestLoadEmpty(t *testing.T) {
	env, err := NewArena(WithReader(&stubReader{}))
	require.NoError(t, err)
	assert.True(t, env.LoadString("test", "").IsNil())
}

func TestLoadStopsAtError(t *testing.T) {
	program := []*LVal{
		SExpr([]*LVal{Symbol("define"), Symbol("x"), Number(1)}),
		Symbol("nope"),
		SExpr([]*LVal{Symbol("define"), Symbol("x"), Number(2)}),
	}
	env, err := NewArena(WithReader(&stubReader{exprs: program}))
	require.NoError(t, err)
	env.AddBuiltins()

	v := env.LoadString("test", "")
	require.Equal(t, LError, v.Type)
	assert.Equal(t, UnboundSymbol, v.Str)
	assert.Equal(t, float64(1), env.Resolve(RootEnv, "x").Num)
}

func TestLoadReadError(t *testing.T) {
	lerr := ErrorConditionf(UnterminatedString, "unterminated string literal")
	env, err := NewArena(WithReader(&stubReader{err: GoError(lerr)}))
	require.NoError(t, err)

	v := env.LoadString("test", "")
	require.Equal(t, LError, v.Type)
	assert.Equal(t, UnterminatedString, v.Str)
}

func TestLoadNoReader(t *testing.T) {
	env, err := NewArena()
	require.NoError(t, err)
	assert.Equal(t, LError, env.LoadString("test", "").Type)
}
