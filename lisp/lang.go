package lisp

// VarArgSymbol indicates a variadic argument in a builtin's list of formal
// arguments.
const VarArgSymbol = "&"

// Reserved names recognized as special forms when they appear at the head
// of a list expression.
const (
	symQuote  = "quote"
	symIf     = "if"
	symDefine = "define"
	symSet    = "set!"
	symLambda = "lambda"
)

// Symbols produced by the reader for the quote-shorthand markers.  Aside
// from quote itself these receive no special evaluation rules; the
// shorthand is purely syntactic sugar for a two-element list.
const (
	SymQuote           = symQuote
	SymQuasiquote      = "quasiquote"
	SymUnquote         = "unquote"
	SymUnquoteSplicing = "unquote-splicing"
)
