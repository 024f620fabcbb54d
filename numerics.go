package ponyo

func IntegerPred(in *Interpreter, args []Value, env *Env) Value {
	checkArity("integer?", args, 1, 1)
	_, ok := in.eval(args[0], env).(Integer)
	return Boolean(ok)
}

func NumberAdd(in *Interpreter, args []Value, env *Env) Value {
	var sum Integer
	for _, x := range args {
		sum += in.evalInteger("+", x, env)
	}
	return sum
}

func NumberMul(in *Interpreter, args []Value, env *Env) Value {
	product := Integer(1)
	for _, x := range args {
		product *= in.evalInteger("*", x, env)
	}
	return product
}

func NumberSub(in *Interpreter, args []Value, env *Env) Value {
	checkArity("-", args, 1, -1)

	diff := in.evalInteger("-", args[0], env)
	if len(args) == 1 {
		return -diff
	}
	for _, x := range args[1:] {
		diff -= in.evalInteger("-", x, env)
	}
	return diff
}

// NumberDiv truncates toward zero. With a single operand it returns the
// operand: there are no rationals.
func NumberDiv(in *Interpreter, args []Value, env *Env) Value {
	checkArity("/", args, 1, -1)

	quo := in.evalInteger("/", args[0], env)
	for _, x := range args[1:] {
		d := in.evalInteger("/", x, env)
		if d == 0 {
			panic(errorf("/", "division by zero"))
		}
		quo /= d
	}
	return quo
}

func NumberRemainder(in *Interpreter, args []Value, env *Env) Value {
	checkArity("remainder", args, 2, 2)

	n := in.evalInteger("remainder", args[0], env)
	d := in.evalInteger("remainder", args[1], env)
	if d == 0 {
		panic(errorf("remainder", "division by zero"))
	}
	return n % d
}

// compare evaluates args left to right and returns #f as soon as an adjacent
// pair does not satisfy ok. Operands after that pair are not evaluated.
func compare(name string, in *Interpreter, args []Value, env *Env, ok func(a, b Integer) bool) Value {
	checkArity(name, args, 1, -1)

	prev := in.evalInteger(name, args[0], env)
	for _, x := range args[1:] {
		curr := in.evalInteger(name, x, env)
		if !ok(prev, curr) {
			return False
		}
		prev = curr
	}
	return True
}

func NumberLt(in *Interpreter, args []Value, env *Env) Value {
	return compare("<", in, args, env, func(a, b Integer) bool { return a < b })
}

func NumberLte(in *Interpreter, args []Value, env *Env) Value {
	return compare("<=", in, args, env, func(a, b Integer) bool { return a <= b })
}

func NumberGt(in *Interpreter, args []Value, env *Env) Value {
	return compare(">", in, args, env, func(a, b Integer) bool { return a > b })
}

func NumberGte(in *Interpreter, args []Value, env *Env) Value {
	return compare(">=", in, args, env, func(a, b Integer) bool { return a >= b })
}

func NumberEq(in *Interpreter, args []Value, env *Env) Value {
	return compare("=", in, args, env, func(a, b Integer) bool { return a == b })
}
