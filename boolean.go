package ponyo

func BooleanPred(in *Interpreter, args []Value, env *Env) Value {
	checkArity("boolean?", args, 1, 1)
	_, ok := in.eval(args[0], env).(Boolean)
	return Boolean(ok)
}

func BooleanNot(in *Interpreter, args []Value, env *Env) Value {
	checkArity("not", args, 1, 1)
	return Boolean(!Truthy(in.eval(args[0], env)))
}
