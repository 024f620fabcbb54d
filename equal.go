package ponyo

// Eq compares integers by value and every other value by identity. Two
// strings with the same text are not eq? unless they are the same string.
func Eq(in *Interpreter, args []Value, env *Env) Value {
	checkArity("eq?", args, 2, 2)
	obj1 := in.eval(args[0], env)
	obj2 := in.eval(args[1], env)
	return Boolean(eq(obj1, obj2))
}

func eq(obj1, obj2 Value) bool {
	// Integer is the only value type that is not a singleton or a pointer,
	// and interface comparison already compares it by value.
	return obj1 == obj2
}
