package ponyo

import "errors"

var (
	errTooFewArguments  = errors.New("too few arguments")
	errTooManyArguments = errors.New("too many arguments")
	errInvalidParams    = errors.New("invalid parameter list")
)

// Frame holds the bindings of one lexical scope as two parallel,
// insertion-ordered slices.
type Frame struct {
	names  []*Symbol
	values []Value
}

func (f *Frame) index(name *Symbol) int {
	for i, n := range f.names {
		if n == name {
			return i
		}
	}
	return -1
}

// Len returns the number of bindings in the frame.
func (f *Frame) Len() int {
	return len(f.names)
}

// Env is a chain of frames. The first frame is the innermost scope.
type Env struct {
	frame  *Frame
	parent *Env
}

// NewEnv returns an environment with a single empty frame in front of
// parent. parent may be nil.
func NewEnv(parent *Env) *Env {
	return &Env{frame: &Frame{}, parent: parent}
}

// Parent returns the environment enclosing e, or nil if e is outermost.
func (e *Env) Parent() *Env {
	return e.parent
}

// Frame returns the innermost frame of e.
func (e *Env) Frame() *Frame {
	return e.frame
}

// Lookup returns the value bound to name in the innermost frame that binds it.
func (e *Env) Lookup(name *Symbol) (Value, bool) {
	for ; e != nil; e = e.parent {
		if i := e.frame.index(name); i != -1 {
			return e.frame.values[i], true
		}
	}
	return nil, false
}

// Define binds name to v in the innermost frame of e, replacing any existing
// binding in that frame.
func (e *Env) Define(name *Symbol, v Value) {
	f := e.frame
	if i := f.index(name); i != -1 {
		f.values[i] = v
		return
	}
	f.names = append(f.names, name)
	f.values = append(f.values, v)
}

// Set replaces the value of the innermost binding of name. It returns false if
// name is not bound.
func (e *Env) Set(name *Symbol, v Value) bool {
	for ; e != nil; e = e.parent {
		if i := e.frame.index(name); i != -1 {
			e.frame.values[i] = v
			return true
		}
	}
	return false
}

// Extend returns a new environment in front of e that binds the parameters in
// params to args. params is a proper list of symbols for fixed arity, an
// improper list ending in a symbol, or a lone symbol; in the latter two cases
// the final symbol is bound to a list of the remaining arguments.
func (e *Env) Extend(params Value, args []Value) (*Env, error) {
	env := NewEnv(e)
	for {
		switch p := params.(type) {
		case *Pair:
			name, ok := p.car.(*Symbol)
			if !ok {
				return nil, errInvalidParams
			}
			if len(args) == 0 {
				return nil, errTooFewArguments
			}
			env.Define(name, args[0])
			params, args = p.cdr, args[1:]
		case *Symbol:
			env.Define(p, List(args...))
			return env, nil
		case Null:
			if len(args) != 0 {
				return nil, errTooManyArguments
			}
			return env, nil
		default:
			return nil, errInvalidParams
		}
	}
}
