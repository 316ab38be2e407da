package lisp

import "io"

// Config is a function that configures an arena at creation time.
type Config func(env *Arena) *LVal

// WithStdout returns a Config that makes the print builtin write to w
// instead of the default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(env *Arena) *LVal {
		env.Stdout = w
		return Nil()
	}
}

// WithReader returns a Config that makes the arena use r to parse source
// streams.  There is no default Reader; the load operations fail without
// one.
func WithReader(r Reader) Config {
	return func(env *Arena) *LVal {
		env.Reader = r
		return Nil()
	}
}
