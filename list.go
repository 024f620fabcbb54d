package ponyo

func PairPred(in *Interpreter, args []Value, env *Env) Value {
	checkArity("pair?", args, 1, 1)
	_, ok := in.eval(args[0], env).(*Pair)
	return Boolean(ok)
}

func PairCons(in *Interpreter, args []Value, env *Env) Value {
	checkArity("cons", args, 2, 2)
	car := in.eval(args[0], env)
	cdr := in.eval(args[1], env)
	return Cons(car, cdr)
}

func PairCar(in *Interpreter, args []Value, env *Env) Value {
	checkArity("car", args, 1, 1)
	return in.evalPair("car", args[0], env).car
}

func PairCdr(in *Interpreter, args []Value, env *Env) Value {
	checkArity("cdr", args, 1, 1)
	return in.evalPair("cdr", args[0], env).cdr
}

func PairSetCar(in *Interpreter, args []Value, env *Env) Value {
	checkArity("set-car!", args, 2, 2)
	p := in.evalPair("set-car!", args[0], env)
	p.car = in.eval(args[1], env)
	return Unspecified
}

func PairSetCdr(in *Interpreter, args []Value, env *Env) Value {
	checkArity("set-cdr!", args, 2, 2)
	p := in.evalPair("set-cdr!", args[0], env)
	p.cdr = in.eval(args[1], env)
	return Unspecified
}

func NullPred(in *Interpreter, args []Value, env *Env) Value {
	checkArity("null?", args, 1, 1)
	return Boolean(in.eval(args[0], env) == EmptyList)
}

// ListPred returns #t for proper lists, including the empty list. Improper
// and cyclic lists are not lists.
func ListPred(in *Interpreter, args []Value, env *Env) Value {
	checkArity("list?", args, 1, 1)
	_, ok := ListToSlice(in.eval(args[0], env))
	return Boolean(ok)
}

func ListLength(in *Interpreter, args []Value, env *Env) Value {
	checkArity("length", args, 1, 1)
	return Integer(len(in.evalList("length", args[0], env)))
}

// ListAppend returns the elements of every operand but the last, followed by
// the last operand. The last operand is shared, not copied, and need not be a
// list.
func ListAppend(in *Interpreter, args []Value, env *Env) Value {
	if len(args) == 0 {
		return EmptyList
	}

	var elems []Value
	for _, x := range args[:len(args)-1] {
		elems = append(elems, in.evalList("append", x, env)...)
	}
	result := in.eval(args[len(args)-1], env)
	for i := len(elems) - 1; i >= 0; i-- {
		result = Cons(elems[i], result)
	}
	return result
}

func ListReverse(in *Interpreter, args []Value, env *Env) Value {
	checkArity("reverse", args, 1, 1)
	var result Value = EmptyList
	for _, v := range in.evalList("reverse", args[0], env) {
		result = Cons(v, result)
	}
	return result
}

// ListMap applies proc to each element of a list, first to last, and returns
// a newly allocated list of the results. As with apply, the elements are
// passed quoted so that they are not evaluated again.
func ListMap(in *Interpreter, args []Value, env *Env) Value {
	checkArity("map", args, 2, 2)

	proc := in.eval(args[0], env)
	if !isProcedure(proc) {
		panic(errorf("map", "expected procedure, got %s", typeName(proc)))
	}
	elems := in.evalList("map", args[1], env)

	results := make([]Value, len(elems))
	for i, v := range elems {
		results[i] = in.apply(proc, List(List(in.quote, v)), env)
	}
	return List(results...)
}
