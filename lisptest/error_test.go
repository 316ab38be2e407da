package lisptest

import "testing"

func TestErrors(t *testing.T) {
	tests := TestSuite{
		{"a failed evaluation does not poison the arena", TestSequence{
			{Expr: "(y 1 2)", Err: "unbound-symbol"},
			{Expr: "(define y +)", Result: "<builtin ``+''>"},
			{Expr: "(y 1 2)", Result: "3"},
		}},
		{"unbound symbols", TestSequence{
			{Expr: "nope", Err: "unbound-symbol"},
			{Expr: "(+ nope 1)", Err: "unbound-symbol"},
			{Expr: "(set! nope 1)", Err: "unbound-symbol"},
		}},
		{"empty application", TestSequence{
			{Expr: "()", Err: "empty-application"},
			{Expr: "(())", Err: "empty-application"},
		}},
		{"not callable", TestSequence{
			{Expr: "(1 2 3)", Err: "not-callable"},
			{Expr: `("f" 1)`, Err: "not-callable"},
			{Expr: "('(1 2) 3)", Err: "not-callable"},
		}},
		{"type mismatch", TestSequence{
			{Expr: `(+ 1 "a")`, Err: "type-mismatch"},
			{Expr: "(< 1 'a)", Err: "type-mismatch"},
			{Expr: "(< 1+2i 3)", Err: "type-mismatch"},
			{Expr: "(car 1)", Err: "type-mismatch"},
			{Expr: "(car '())", Err: "type-mismatch"},
			{Expr: "(cdr 1)", Err: "type-mismatch"},
			{Expr: "(cons 1 2)", Err: "type-mismatch"},
			{Expr: "(length 1)", Err: "type-mismatch"},
			{Expr: "(map 1 '(1 2))", Err: "type-mismatch"},
			{Expr: "(if 1 2 3)", Err: "type-mismatch"},
			{Expr: "(not 1)", Err: "type-mismatch"},
			{Expr: "(define 1 2)", Err: "type-mismatch"},
			{Expr: "(lambda (x 1) x)", Err: "type-mismatch"},
		}},
		{"arity mismatch", TestSequence{
			{Expr: "(+ 1)", Err: "arity-mismatch"},
			{Expr: "(+ 1 2 3)", Err: "arity-mismatch"},
			{Expr: "(min)", Err: "arity-mismatch"},
			{Expr: "((lambda (x) x))", Err: "arity-mismatch"},
			{Expr: "((lambda (x) x) 1 2)", Err: "arity-mismatch"},
			{Expr: "(if #t 1)", Err: "arity-mismatch"},
			{Expr: "(quote a b)", Err: "arity-mismatch"},
			{Expr: "(define x)", Err: "arity-mismatch"},
		}},
		{"errors propagate out of nested evaluation", TestSequence{
			{Expr: "(+ 1 (car '()))", Err: "type-mismatch"},
			{Expr: "(map (lambda (x) (car x)) '(1 2))", Err: "type-mismatch"},
			{Expr: "(if (car '()) 1 0)", Err: "type-mismatch"},
		}},
		{"reader errors", TestSequence{
			{Expr: ")", Err: "unexpected-close-paren"},
			{Expr: "(+ 1 2", Err: "unexpected-eof"},
			{Expr: "'", Err: "unexpected-eof"},
			{Expr: `"abc`, Err: "unterminated-string"},
		}},
	}
	RunTestSuite(t, tests)
}
