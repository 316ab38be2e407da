package lisp

import "fmt"

// Error conditions raised by the reader.
const (
	UnexpectedCloseParen = "unexpected-close-paren"
	UnterminatedString   = "unterminated-string"
	UnexpectedEOF        = "unexpected-eof"
)

// Error conditions raised by the evaluator.
const (
	UnboundSymbol    = "unbound-symbol"
	EmptyApplication = "empty-application"
	NotCallable      = "not-callable"
	TypeMismatch     = "type-mismatch"
	ArityMismatch    = "arity-mismatch"
)

// ErrorCondition returns an LVal representing an error with the given
// condition name wrapping err.
func ErrorCondition(condition string, err error) *LVal {
	return &LVal{
		Type: LError,
		Str:  condition,
		Err:  err,
	}
}

// ErrorConditionf returns an error LVal with the given condition name and a
// formatted message.
func ErrorConditionf(condition string, format string, v ...interface{}) *LVal {
	return ErrorCondition(condition, fmt.Errorf(format, v...))
}

// typeErrorf is shorthand for the type-mismatch errors builtins raise.  The
// message names the expected kind and the kind that was received.
func typeErrorf(fn string, expect LType, got *LVal) *LVal {
	return ErrorConditionf(TypeMismatch, "%s: expected %s (got %s)", fn, expect, got.Type)
}

// ErrorVal implements the error interface so that error LVals can cross the
// package boundary as ordinary Go errors.  The condition name is stored in
// the Str field.
type ErrorVal LVal

// Error implements the error interface.
func (e *ErrorVal) Error() string {
	return (*LVal)(e).String()
}

// Condition returns the name identifying the kind of error e represents.
func (e *ErrorVal) Condition() string {
	return e.Str
}

// GoError converts an error LVal into a Go error.  It returns nil when v is
// not an error so callers can return it unconditionally.
func GoError(v *LVal) error {
	if v.Type != LError {
		return nil
	}
	return (*ErrorVal)(v)
}
