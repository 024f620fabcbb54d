package ponyo

// The special forms below are ordinary primitives that control the evaluation
// of their own operands.

// (quote ⟨datum⟩)
// '⟨datum⟩
func SyntaxQuote(in *Interpreter, args []Value, env *Env) Value {
	checkArity("quote", args, 1, 1)
	return args[0]
}

// (if ⟨test⟩ ⟨consequent⟩ ⟨alternate⟩)
// (if ⟨test⟩ ⟨consequent⟩)
//
// If ⟨test⟩ yields a value other than #f, ⟨consequent⟩ is evaluated and its
// value returned. Otherwise ⟨alternate⟩ is evaluated and its value returned;
// with no ⟨alternate⟩ the result is unspecified.
func SyntaxIf(in *Interpreter, args []Value, env *Env) Value {
	checkArity("if", args, 2, 3)
	if Truthy(in.eval(args[0], env)) {
		return in.eval(args[1], env)
	}
	if len(args) == 2 {
		return Unspecified
	}
	return in.eval(args[2], env)
}

// (cond ⟨clause1⟩ ⟨clause2⟩ ...)
//
// Each clause is (⟨test⟩ ⟨expression⟩ ...) or, last, (else ⟨expression⟩ ...).
// The expressions of the first clause whose test is true are evaluated in
// order and the value of the last is returned. A clause without expressions
// returns the value of its test.
func SyntaxCond(in *Interpreter, args []Value, env *Env) Value {
	checkArity("cond", args, 1, -1)
	for i, arg := range args {
		clause, ok := arg.(*Pair)
		if !ok {
			panic(errorf("cond", "clause must be a list, got %s", typeName(arg)))
		}
		body, ok := ListToSlice(clause.cdr)
		if !ok {
			panic(errorf("cond", "malformed clause"))
		}

		if clause.car == in.symElse {
			if i != len(args)-1 {
				panic(errorf("cond", "else clause must be last"))
			}
			return in.evalSeq(body, env)
		}

		test := in.eval(clause.car, env)
		if !Truthy(test) {
			continue
		}
		if len(body) == 0 {
			return test
		}
		return in.evalSeq(body, env)
	}
	return Unspecified
}

// (and ⟨test1⟩ ...)
//
// Returns the first false value, or the value of the last test. No test is
// evaluated after a false one. (and) is #t.
func SyntaxAnd(in *Interpreter, args []Value, env *Env) Value {
	var result Value = True
	for _, x := range args {
		if result = in.eval(x, env); !Truthy(result) {
			break
		}
	}
	return result
}

// (or ⟨test1⟩ ...)
//
// Returns the first true value, or the value of the last test. No test is
// evaluated after a true one. (or) is #f.
func SyntaxOr(in *Interpreter, args []Value, env *Env) Value {
	var result Value = False
	for _, x := range args {
		if result = in.eval(x, env); Truthy(result) {
			break
		}
	}
	return result
}

// (define ⟨variable⟩ ⟨expression⟩)
// (define (⟨variable⟩ ⟨formals⟩) ⟨body⟩)
// (define (⟨variable⟩ . ⟨formal⟩) ⟨body⟩)
//
// Binds ⟨variable⟩ in the innermost frame of the current environment. The
// second and third forms are shorthand for binding ⟨variable⟩ to
// (lambda ⟨formals⟩ ⟨body⟩) and (lambda ⟨formal⟩ ⟨body⟩).
func SyntaxDefine(in *Interpreter, args []Value, env *Env) Value {
	checkArity("define", args, 2, -1)

	switch target := args[0].(type) {
	case *Symbol:
		checkArity("define", args, 2, 2)
		env.Define(target, in.eval(args[1], env))
	case *Pair:
		name, ok := target.car.(*Symbol)
		if !ok {
			panic(errorf("define", "procedure name must be a symbol, got %s", typeName(target.car)))
		}
		env.Define(name, newLambda("define", name.name, target.cdr, args[1:], env))
	default:
		panic(errorf("define", "expected symbol or list, got %s", typeName(target)))
	}
	return Unspecified
}

// (lambda ⟨formals⟩ ⟨body⟩)
//
// Returns a compound procedure that captures the current environment. The
// body is not evaluated until the procedure is applied.
func SyntaxLambda(in *Interpreter, args []Value, env *Env) Value {
	checkArity("lambda", args, 2, -1)
	return newLambda("lambda", "", args[0], args[1:], env)
}

// (let ((⟨variable1⟩ ⟨init1⟩) ...) ⟨body⟩)
//
// Equivalent to ((lambda (⟨variable1⟩ ...) ⟨body⟩) ⟨init1⟩ ...): the inits
// are evaluated in the current environment and bound in a new frame.
func SyntaxLet(in *Interpreter, args []Value, env *Env) Value {
	const invalidBinding = "bindings must be of the form ((⟨variable⟩ ⟨init⟩) ...)"

	checkArity("let", args, 2, -1)

	bindings, ok := ListToSlice(args[0])
	if !ok {
		panic(errorf("let", invalidBinding))
	}

	params := make([]Value, len(bindings))
	inits := make([]Value, len(bindings))
	for i, b := range bindings {
		binding, ok := ListToSlice(b)
		if !ok || len(binding) != 2 {
			panic(errorf("let", invalidBinding))
		}
		if _, ok := binding[0].(*Symbol); !ok {
			panic(errorf("let", invalidBinding))
		}
		params[i], inits[i] = binding[0], binding[1]
	}

	proc := newLambda("let", "", List(params...), args[1:], env)
	return in.apply(proc, List(inits...), env)
}

// (set! ⟨variable⟩ ⟨expression⟩)
//
// Stores the value of ⟨expression⟩ in the innermost binding of ⟨variable⟩.
// It is an error if ⟨variable⟩ is not bound.
func SyntaxSet(in *Interpreter, args []Value, env *Env) Value {
	checkArity("set!", args, 2, 2)
	name, ok := args[0].(*Symbol)
	if !ok {
		panic(errorf("set!", "expected symbol, got %s", typeName(args[0])))
	}
	if !env.Set(name, in.eval(args[1], env)) {
		panic(errorf("set!", "unbound variable: %s", name.name))
	}
	return Unspecified
}
