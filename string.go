package ponyo

import (
	"strings"
	"unicode/utf8"
)

func StringPred(in *Interpreter, args []Value, env *Env) Value {
	checkArity("string?", args, 1, 1)
	_, ok := in.eval(args[0], env).(*String)
	return Boolean(ok)
}

// StringLength returns the number of characters in a string.
func StringLength(in *Interpreter, args []Value, env *Env) Value {
	checkArity("string-length", args, 1, 1)
	s := in.evalString("string-length", args[0], env)
	return Integer(utf8.RuneCountInString(s.s))
}

// StringAppend returns a newly allocated string.
func StringAppend(in *Interpreter, args []Value, env *Env) Value {
	var b strings.Builder
	for _, x := range args {
		b.WriteString(in.evalString("string-append", x, env).s)
	}
	return NewString(b.String())
}
