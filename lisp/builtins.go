package lisp

import (
	"fmt"
	"math"
	"math/cmplx"
)

type langBuiltin struct {
	name    string
	formals *LVal
	fun     LBuiltin
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Formals() *LVal {
	return fun.formals
}

func (fun *langBuiltin) Eval(env *Arena, args *LVal) *LVal {
	return fun.fun(env, args)
}

// Formals returns a list of formal argument symbols for a builtin
// definition.
func Formals(names ...string) *LVal {
	cells := make([]*LVal, len(names))
	for i, name := range names {
		cells[i] = Symbol(name)
	}
	return SExpr(cells)
}

var langBuiltins = []*langBuiltin{
	{"+", Formals("a", "b"), builtinAdd},
	{"-", Formals("a", "b"), builtinSub},
	{"*", Formals("a", "b"), builtinMul},
	{"/", Formals("a", "b"), builtinDiv},
	{"abs", Formals("x"), builtinAbs},
	{"expt", Formals("base", "power"), builtinExpt},
	{"round", Formals("x"), builtinRound},
	{"min", Formals("x", VarArgSymbol, "rest"), builtinMin},
	{"max", Formals("x", VarArgSymbol, "rest"), builtinMax},
	{"<", Formals("a", "b"), builtinLT},
	{"<=", Formals("a", "b"), builtinLEq},
	{">", Formals("a", "b"), builtinGT},
	{">=", Formals("a", "b"), builtinGEq},
	{"=", Formals("a", "b"), builtinEqNum},
	{"equal?", Formals("a", "b"), builtinEqual},
	{"list", Formals(VarArgSymbol, "args"), builtinList},
	{"car", Formals("lis"), builtinCAR},
	{"cdr", Formals("lis"), builtinCDR},
	{"cons", Formals("head", "tail"), builtinCons},
	{"append", Formals(VarArgSymbol, "lists"), builtinAppend},
	{"length", Formals("lis"), builtinLength},
	{"null?", Formals("lis"), builtinNullP},
	{"list?", Formals("x"), builtinListP},
	{"apply", Formals("fn", VarArgSymbol, "args"), builtinApply},
	{"map", Formals("fn", "lis"), builtinMap},
	{"number?", Formals("x"), builtinNumberP},
	{"symbol?", Formals("x"), builtinSymbolP},
	{"procedure?", Formals("x"), builtinProcedureP},
	{"not", Formals("x"), builtinNot},
	{"begin", Formals(VarArgSymbol, "exprs"), builtinBegin},
	{"print", Formals(VarArgSymbol, "args"), builtinPrint},
}

// DefaultBuiltins returns the default set of LBuiltinDefs added to an Arena
// when AddBuiltins is called without arguments.
func DefaultBuiltins() []LBuiltinDef {
	funs := make([]LBuiltinDef, len(langBuiltins))
	for i := range langBuiltins {
		funs[i] = langBuiltins[i]
	}
	return funs
}

// DefaultConstants returns the constants bound into the root frame when
// AddConstants is called without arguments.
func DefaultConstants() []LConstantDef {
	return []LConstantDef{
		{"pi", Number(math.Pi)},
	}
}

// isNumeric returns true when v is a real or complex number.
func isNumeric(v *LVal) bool {
	return v.Type == LNumber || v.Type == LComplex
}

// asComplex widens a numeric value for mixed real/complex arithmetic.
func asComplex(v *LVal) complex128 {
	if v.Type == LComplex {
		return v.Cmplx
	}
	return complex(v.Num, 0)
}

// arith implements the binary arithmetic builtins.  Two reals produce a
// real; when either operand is complex both are widened and the result is
// complex.
func arith(fn string, args *LVal, fop func(a, b float64) float64, cop func(a, b complex128) complex128) *LVal {
	a, b := args.Cells[0], args.Cells[1]
	if !isNumeric(a) {
		return typeErrorf(fn, LNumber, a)
	}
	if !isNumeric(b) {
		return typeErrorf(fn, LNumber, b)
	}
	if a.Type == LComplex || b.Type == LComplex {
		return Complex(cop(asComplex(a), asComplex(b)))
	}
	return Number(fop(a.Num, b.Num))
}

func builtinAdd(env *Arena, args *LVal) *LVal {
	return arith("+", args,
		func(a, b float64) float64 { return a + b },
		func(a, b complex128) complex128 { return a + b })
}

func builtinSub(env *Arena, args *LVal) *LVal {
	return arith("-", args,
		func(a, b float64) float64 { return a - b },
		func(a, b complex128) complex128 { return a - b })
}

func builtinMul(env *Arena, args *LVal) *LVal {
	return arith("*", args,
		func(a, b float64) float64 { return a * b },
		func(a, b complex128) complex128 { return a * b })
}

func builtinDiv(env *Arena, args *LVal) *LVal {
	// Division follows IEEE float64 semantics; a zero divisor produces an
	// infinity, not an error.
	return arith("/", args,
		func(a, b float64) float64 { return a / b },
		func(a, b complex128) complex128 { return a / b })
}

func builtinAbs(env *Arena, args *LVal) *LVal {
	x := args.Cells[0]
	switch x.Type {
	case LNumber:
		return Number(math.Abs(x.Num))
	case LComplex:
		return Number(cmplx.Abs(x.Cmplx))
	default:
		return typeErrorf("abs", LNumber, x)
	}
}

func builtinExpt(env *Arena, args *LVal) *LVal {
	base, power := args.Cells[0], args.Cells[1]
	if base.Type != LNumber {
		return typeErrorf("expt", LNumber, base)
	}
	if power.Type != LNumber {
		return typeErrorf("expt", LNumber, power)
	}
	return Number(math.Pow(base.Num, power.Num))
}

func builtinRound(env *Arena, args *LVal) *LVal {
	x := args.Cells[0]
	if x.Type != LNumber {
		return typeErrorf("round", LNumber, x)
	}
	return Number(math.Round(x.Num))
}

// extremum implements min and max over one or more reals.
func extremum(fn string, args *LVal, pick func(a, b float64) float64) *LVal {
	best := args.Cells[0]
	if best.Type != LNumber {
		return typeErrorf(fn, LNumber, best)
	}
	x := best.Num
	for _, c := range args.Cells[1:] {
		if c.Type != LNumber {
			return typeErrorf(fn, LNumber, c)
		}
		x = pick(x, c.Num)
	}
	return Number(x)
}

func builtinMin(env *Arena, args *LVal) *LVal {
	return extremum("min", args, math.Min)
}

func builtinMax(env *Arena, args *LVal) *LVal {
	return extremum("max", args, math.Max)
}

// compare implements the ordered numeric comparisons, which are defined for
// reals only.
func compare(fn string, args *LVal, cmp func(a, b float64) bool) *LVal {
	a, b := args.Cells[0], args.Cells[1]
	if a.Type != LNumber {
		return typeErrorf(fn, LNumber, a)
	}
	if b.Type != LNumber {
		return typeErrorf(fn, LNumber, b)
	}
	return Bool(cmp(a.Num, b.Num))
}

func builtinLT(env *Arena, args *LVal) *LVal {
	return compare("<", args, func(a, b float64) bool { return a < b })
}

func builtinLEq(env *Arena, args *LVal) *LVal {
	return compare("<=", args, func(a, b float64) bool { return a <= b })
}

func builtinGT(env *Arena, args *LVal) *LVal {
	return compare(">", args, func(a, b float64) bool { return a > b })
}

func builtinGEq(env *Arena, args *LVal) *LVal {
	return compare(">=", args, func(a, b float64) bool { return a >= b })
}

func builtinEqNum(env *Arena, args *LVal) *LVal {
	return compare("=", args, func(a, b float64) bool { return a == b })
}

func builtinEqual(env *Arena, args *LVal) *LVal {
	return Bool(args.Cells[0].Equal(args.Cells[1]))
}

func builtinList(env *Arena, args *LVal) *LVal {
	return SExpr(args.Cells)
}

func builtinCAR(env *Arena, args *LVal) *LVal {
	lis := args.Cells[0]
	if lis.Type != LSExpr || len(lis.Cells) == 0 {
		return ErrorConditionf(TypeMismatch, "car: expected non-empty list (got %s): %v", lis.Type, lis)
	}
	return lis.Cells[0]
}

func builtinCDR(env *Arena, args *LVal) *LVal {
	lis := args.Cells[0]
	if lis.Type != LSExpr {
		return typeErrorf("cdr", LSExpr, lis)
	}
	if len(lis.Cells) == 0 {
		return Nil()
	}
	return SExpr(lis.Cells[1:])
}

func builtinCons(env *Arena, args *LVal) *LVal {
	tail := args.Cells[1]
	if tail.Type != LSExpr {
		return typeErrorf("cons", LSExpr, tail)
	}
	cells := make([]*LVal, 0, len(tail.Cells)+1)
	cells = append(cells, args.Cells[0])
	cells = append(cells, tail.Cells...)
	return SExpr(cells)
}

func builtinAppend(env *Arena, args *LVal) *LVal {
	var cells []*LVal
	for _, lis := range args.Cells {
		if lis.Type != LSExpr {
			return typeErrorf("append", LSExpr, lis)
		}
		cells = append(cells, lis.Cells...)
	}
	return SExpr(cells)
}

func builtinLength(env *Arena, args *LVal) *LVal {
	lis := args.Cells[0]
	if lis.Type != LSExpr {
		return typeErrorf("length", LSExpr, lis)
	}
	return Number(float64(len(lis.Cells)))
}

func builtinNullP(env *Arena, args *LVal) *LVal {
	lis := args.Cells[0]
	if lis.Type != LSExpr {
		return typeErrorf("null?", LSExpr, lis)
	}
	return Bool(len(lis.Cells) == 0)
}

func builtinListP(env *Arena, args *LVal) *LVal {
	return Bool(args.Cells[0].Type == LSExpr)
}

func builtinApply(env *Arena, args *LVal) *LVal {
	f := args.Cells[0]
	// Remaining arguments are flattened: list arguments contribute their
	// elements, anything else is passed through unchanged.
	var cells []*LVal
	for _, c := range args.Cells[1:] {
		if c.Type == LSExpr {
			cells = append(cells, c.Cells...)
		} else {
			cells = append(cells, c)
		}
	}
	return env.Invoke(f, SExpr(cells))
}

func builtinMap(env *Arena, args *LVal) *LVal {
	f := args.Cells[0]
	if f.Type != LFun {
		return typeErrorf("map", LFun, f)
	}
	lis := args.Cells[1]
	if lis.Type != LSExpr {
		return typeErrorf("map", LSExpr, lis)
	}
	cells := make([]*LVal, len(lis.Cells))
	for i, c := range lis.Cells {
		ret := env.Invoke(f, SExpr([]*LVal{c}))
		if ret.Type == LError {
			return ret
		}
		cells[i] = ret
	}
	return SExpr(cells)
}

func builtinNumberP(env *Arena, args *LVal) *LVal {
	return Bool(args.Cells[0].Type == LNumber)
}

func builtinSymbolP(env *Arena, args *LVal) *LVal {
	return Bool(args.Cells[0].Type == LSymbol)
}

func builtinProcedureP(env *Arena, args *LVal) *LVal {
	return Bool(args.Cells[0].Type == LFun)
}

func builtinNot(env *Arena, args *LVal) *LVal {
	ok, lerr := truthy(args.Cells[0])
	if lerr != nil {
		return lerr
	}
	return Bool(!ok)
}

func builtinBegin(env *Arena, args *LVal) *LVal {
	// Operands were already evaluated left to right by the application
	// rule; begin simply yields the last of them.
	if args.Len() == 0 {
		return Nil()
	}
	return args.Cells[args.Len()-1]
}

func builtinPrint(env *Arena, args *LVal) *LVal {
	for i, c := range args.Cells {
		if i > 0 {
			fmt.Fprint(env.Stdout, " ")
		}
		fmt.Fprint(env.Stdout, c.String())
	}
	fmt.Fprintln(env.Stdout)
	return Nil()
}
