package lisp

import (
	"fmt"
	"io"
	"os"
)

// EnvID is a stable handle identifying one frame in an Arena.  An EnvID is
// valid for the remainder of the process once issued.
type EnvID int

// RootEnv is the id of the root frame, installed when the arena is created
// and holding the builtin bindings.
const RootEnv EnvID = 0

// noParent marks the root frame, which has no enclosing frame.
const noParent EnvID = -1

// frame is one lexical scope: a symbol-to-value mapping plus the id of the
// enclosing frame.  Frames form a forest of parent-pointing trees; a frame
// is only ever created pointing at an already-existing parent, so no cycles
// can occur.
type frame struct {
	parent EnvID
	scope  map[string]*LVal
}

// Arena is an index-addressed store of lexical frames.  It grows by one
// frame per closure invocation and never reclaims frames, so an EnvID is
// never invalidated.  An Arena is confined to a single goroutine; the
// evaluator mutates it without locking.
type Arena struct {
	frames []*frame

	// Runtime collaborators.  Stdout receives the output of the print
	// builtin and Reader, when configured, parses source for the load
	// operations.
	Stdout io.Writer
	Reader Reader
}

// NewArena initializes an arena with an empty root frame and applies the
// given configuration.
func NewArena(config ...Config) (*Arena, error) {
	env := &Arena{
		frames: []*frame{{parent: noParent, scope: make(map[string]*LVal)}},
		Stdout: os.Stdout,
	}
	for _, fn := range config {
		lerr := fn(env)
		if lerr.Type == LError {
			return nil, GoError(lerr)
		}
	}
	return env, nil
}

// Child allocates a new frame parented to parent whose scope is the
// positional zip of params with args.  When the two sequences differ in
// length the shorter governs; callers that require an exact match check
// arity before allocating (see Invoke).
func (env *Arena) Child(params []string, args []*LVal, parent EnvID) EnvID {
	scope := make(map[string]*LVal, len(params))
	for i, name := range params {
		if i >= len(args) {
			break
		}
		scope[name] = args[i]
	}
	env.frames = append(env.frames, &frame{parent: parent, scope: scope})
	return EnvID(len(env.frames) - 1)
}

// Bind inserts or overwrites the binding for name in the frame at id only.
// It never searches enclosing frames; define always targets the innermost
// frame so shadowing an outer binding is intentional.
func (env *Arena) Bind(id EnvID, name string, v *LVal) {
	if v == nil {
		panic("nil value")
	}
	env.frames[id].scope[name] = v
}

// Resolve returns the value bound to name in the frame at id or the nearest
// enclosing frame.  An unbound-symbol error is returned when the root is
// reached without a match.
func (env *Arena) Resolve(id EnvID, name string) *LVal {
	for id != noParent {
		f := env.frames[id]
		if v, ok := f.scope[name]; ok {
			return v
		}
		id = f.parent
	}
	return ErrorConditionf(UnboundSymbol, "unbound symbol: %s", name)
}

// FindOwner returns the id of the nearest frame at or above id that binds
// name.  The second return is false when no frame in the chain binds name.
func (env *Arena) FindOwner(id EnvID, name string) (EnvID, bool) {
	for id != noParent {
		f := env.frames[id]
		if _, ok := f.scope[name]; ok {
			return id, true
		}
		id = f.parent
	}
	return noParent, false
}

// Mutate overwrites the existing binding for name in the frame at owner.
// Mutate never creates a binding; owner must come from FindOwner.
func (env *Arena) Mutate(owner EnvID, name string, v *LVal) {
	f := env.frames[owner]
	if _, ok := f.scope[name]; !ok {
		panic(fmt.Sprintf("mutate of unbound symbol: %s", name))
	}
	f.scope[name] = v
}

// len reports the number of allocated frames.
func (env *Arena) len() int {
	return len(env.frames)
}

// AddBuiltins binds the given funs to their names in the root frame.  When
// called with no arguments AddBuiltins adds the DefaultBuiltins.
func (env *Arena) AddBuiltins(funs ...LBuiltinDef) {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	for _, f := range funs {
		if _, ok := env.frames[RootEnv].scope[f.Name()]; ok {
			panic("symbol already defined: " + f.Name())
		}
		v := Fun(f.Name(), f.Eval)
		v.Formals = f.Formals()
		env.Bind(RootEnv, f.Name(), v)
	}
}

// AddConstants binds the given constants in the root frame.  When called
// with no arguments AddConstants adds the DefaultConstants.
func (env *Arena) AddConstants(consts ...LConstantDef) {
	if len(consts) == 0 {
		consts = DefaultConstants()
	}
	for _, c := range consts {
		if _, ok := env.frames[RootEnv].scope[c.Name]; ok {
			panic("symbol already defined: " + c.Name)
		}
		env.Bind(RootEnv, c.Name, c.Value)
	}
}

// LConstantDef is a named constant bound into the root frame at startup.
type LConstantDef struct {
	Name  string
	Value *LVal
}
