package lisp

// specialForm evaluates the unevaluated operands of a reserved form in the
// frame at id.
type specialForm func(env *Arena, id EnvID, args *LVal) *LVal

var langSpecialForms map[string]specialForm

// The op functions recurse into Eval, so assigning the table in an
// initializer expression would be an initialization cycle.
func init() {
	langSpecialForms = map[string]specialForm{
		symQuote:  opQuote,
		symIf:     opIf,
		symDefine: opDefine,
		symSet:    opSet,
		symLambda: opLambda,
	}
}

// Eval evaluates v in the context of the frame at id and returns the
// resulting LVal.  Symbols resolve through the frame chain, lists evaluate
// as special forms or applications, and every other value evaluates to
// itself.
func (env *Arena) Eval(v *LVal, id EnvID) *LVal {
	switch v.Type {
	case LSymbol:
		return env.Resolve(id, v.Str)
	case LSExpr:
		return env.EvalSExpr(v, id)
	default:
		return v
	}
}

// EvalSExpr evaluates a list expression.  A list whose head is a symbol
// naming a special form receives that form's evaluation rules; any other
// non-empty list is an application.
func (env *Arena) EvalSExpr(s *LVal, id EnvID) *LVal {
	if len(s.Cells) == 0 {
		return ErrorConditionf(EmptyApplication, "cannot evaluate the empty list")
	}
	head := s.Cells[0]
	if head.Type == LSymbol {
		if op, ok := langSpecialForms[head.Str]; ok {
			return op(env, id, SExpr(s.Cells[1:]))
		}
	}

	f := env.Eval(head, id)
	if f.Type == LError {
		return f
	}
	if f.Type != LFun {
		return ErrorConditionf(NotCallable, "first element of expression is not a function: %v", f)
	}

	// Arguments evaluate left to right in the calling frame.
	args := make([]*LVal, len(s.Cells)-1)
	for i, c := range s.Cells[1:] {
		args[i] = env.Eval(c, id)
		if args[i].Type == LError {
			return args[i]
		}
	}
	return env.Invoke(f, SExpr(args))
}

// Invoke calls the function f with the list of evaluated arguments args.  A
// native function executes directly.  A closure allocates one child frame
// parented to its captured frame and evaluates its body there.
func (env *Arena) Invoke(f *LVal, args *LVal) *LVal {
	if f.Type != LFun {
		return ErrorConditionf(NotCallable, "value is not a function: %v", f)
	}
	if lerr := checkArity(f, args); lerr != nil {
		return lerr
	}
	if f.Builtin != nil {
		return f.Builtin(env, args)
	}
	params := make([]string, len(f.Formals.Cells))
	for i, sym := range f.Formals.Cells {
		params[i] = sym.Str
	}
	id := env.Child(params, args.Cells, f.Env)
	return env.Eval(f.Body, id)
}

// checkArity verifies that args matches the formal argument list of f.  A
// closure requires exactly one argument per parameter.  A builtin counts
// formals up to the variadic marker, which accepts any number of trailing
// arguments.
func checkArity(f *LVal, args *LVal) *LVal {
	n := 0
	variadic := false
	for _, sym := range f.Formals.Cells {
		if f.Builtin != nil && sym.Str == VarArgSymbol {
			variadic = true
			break
		}
		n++
	}
	if args.Len() == n || (variadic && args.Len() > n) {
		return nil
	}
	name := f.Str
	if f.Builtin == nil {
		name = "lambda"
	}
	if variadic {
		return ErrorConditionf(ArityMismatch, "%s: expects at least %d arguments (got %d)",
			name, n, args.Len())
	}
	return ErrorConditionf(ArityMismatch, "%s: expects %d arguments (got %d)",
		name, n, args.Len())
}

// truthy coerces v for the test position of an if form.  A bool yields its
// literal value and a list is true iff it is non-empty; coercion is
// undefined for every other kind of value.
func truthy(v *LVal) (bool, *LVal) {
	switch v.Type {
	case LBool:
		return v.Bln, nil
	case LSExpr:
		return len(v.Cells) > 0, nil
	default:
		return false, ErrorConditionf(TypeMismatch, "expected bool (got %s): %v", v.Type, v)
	}
}

// (quote e)
func opQuote(env *Arena, id EnvID, args *LVal) *LVal {
	if args.Len() != 1 {
		return ErrorConditionf(ArityMismatch, "quote: one operand expected (got %d)", args.Len())
	}
	return args.Cells[0]
}

// (if test then else)
func opIf(env *Arena, id EnvID, args *LVal) *LVal {
	if args.Len() != 3 {
		return ErrorConditionf(ArityMismatch, "if: three operands expected (got %d)", args.Len())
	}
	r := env.Eval(args.Cells[0], id)
	if r.Type == LError {
		return r
	}
	ok, lerr := truthy(r)
	if lerr != nil {
		return lerr
	}
	if ok {
		return env.Eval(args.Cells[1], id)
	}
	return env.Eval(args.Cells[2], id)
}

// (define sym e)
func opDefine(env *Arena, id EnvID, args *LVal) *LVal {
	if args.Len() != 2 {
		return ErrorConditionf(ArityMismatch, "define: two operands expected (got %d)", args.Len())
	}
	sym := args.Cells[0]
	if sym.Type != LSymbol {
		return typeErrorf("define", LSymbol, sym)
	}
	v := env.Eval(args.Cells[1], id)
	if v.Type == LError {
		return v
	}
	env.Bind(id, sym.Str, v)
	return v
}

// (set! sym e)
func opSet(env *Arena, id EnvID, args *LVal) *LVal {
	if args.Len() != 2 {
		return ErrorConditionf(ArityMismatch, "set!: two operands expected (got %d)", args.Len())
	}
	sym := args.Cells[0]
	if sym.Type != LSymbol {
		return typeErrorf("set!", LSymbol, sym)
	}
	v := env.Eval(args.Cells[1], id)
	if v.Type == LError {
		return v
	}
	owner, ok := env.FindOwner(id, sym.Str)
	if !ok {
		// set! never creates bindings.
		return ErrorConditionf(UnboundSymbol, "unbound symbol: %s", sym.Str)
	}
	env.Mutate(owner, sym.Str, v)
	return Bool(true)
}

// (lambda (params...) body)
func opLambda(env *Arena, id EnvID, args *LVal) *LVal {
	if args.Len() != 2 {
		return ErrorConditionf(ArityMismatch, "lambda: two operands expected (got %d)", args.Len())
	}
	formals := args.Cells[0]
	if formals.Type != LSExpr {
		return typeErrorf("lambda", LSExpr, formals)
	}
	for _, sym := range formals.Cells {
		if sym.Type != LSymbol {
			return typeErrorf("lambda", LSymbol, sym)
		}
	}
	// The body is captured unevaluated along with the current frame id.
	return Lambda(formals, args.Cells[1], id)
}
