package ponyo

// eval evaluates x in env. Errors are raised by panicking with an *Error; the
// exported entry points on Interpreter recover them.
func (in *Interpreter) eval(x Value, env *Env) Value {
	switch x := x.(type) {
	case *Symbol:
		v, ok := env.Lookup(x)
		if !ok {
			panic(errorf("", "unbound variable: %s", x.name))
		}
		return v
	case *Pair:
		return in.apply(in.eval(x.car, env), x.cdr, env)
	case Null:
		panic(errorf("", "empty application: ()"))
	default:
		return x
	}
}

// apply applies proc to the unevaluated operand list operands. Primitives
// receive the operands as-is; compound procedures receive them evaluated in
// env, left to right, before any parameter is bound.
func (in *Interpreter) apply(proc Value, operands Value, env *Env) Value {
	switch p := proc.(type) {
	case *Primitive:
		args, ok := ListToSlice(operands)
		if !ok {
			panic(errorf(p.name, "malformed application"))
		}
		return p.fn(in, args, env)
	case *Lambda:
		args, ok := ListToSlice(operands)
		if !ok {
			panic(errorf(p.Name(), "malformed application"))
		}
		actuals := make([]Value, len(args))
		for i, arg := range args {
			actuals[i] = in.eval(arg, env)
		}
		return in.call(p, actuals)
	default:
		panic(errorf("", "unknown procedure type: %s", typeName(proc)))
	}
}

// call binds args to the parameters of p in a new frame in front of the
// environment p captured and evaluates p's body there.
func (in *Interpreter) call(p *Lambda, args []Value) Value {
	if in.maxDepth > 0 && in.depth >= in.maxDepth {
		panic(errorf(p.Name(), "maximum recursion depth exceeded"))
	}
	in.depth++
	defer func() { in.depth-- }()

	scope, err := p.env.Extend(p.params, args)
	if err != nil {
		panic(errorf(p.Name(), "%v", err))
	}
	return in.evalSeq(p.body, scope)
}

// evalSeq evaluates body in order and returns the value of the last
// expression, or Unspecified if body is empty.
func (in *Interpreter) evalSeq(body []Value, env *Env) Value {
	var result Value = Unspecified
	for _, x := range body {
		result = in.eval(x, env)
	}
	return result
}

func (in *Interpreter) evalInteger(name string, x Value, env *Env) Integer {
	v := in.eval(x, env)
	i, ok := v.(Integer)
	if !ok {
		panic(errorf(name, "expected integer, got %s", typeName(v)))
	}
	return i
}

func (in *Interpreter) evalPair(name string, x Value, env *Env) *Pair {
	v := in.eval(x, env)
	p, ok := v.(*Pair)
	if !ok {
		panic(errorf(name, "expected pair, got %s", typeName(v)))
	}
	return p
}

func (in *Interpreter) evalList(name string, x Value, env *Env) []Value {
	v := in.eval(x, env)
	vals, ok := ListToSlice(v)
	if !ok {
		panic(errorf(name, "expected list, got %s", describeList(v)))
	}
	return vals
}

func (in *Interpreter) evalString(name string, x Value, env *Env) *String {
	v := in.eval(x, env)
	s, ok := v.(*String)
	if !ok {
		panic(errorf(name, "expected string, got %s", typeName(v)))
	}
	return s
}
