package ponyo

import (
	"io"
	"os"
)

// Display writes a string without quotes or escapes, and any other value as
// the printer would.
func Display(in *Interpreter, args []Value, env *Env) Value {
	checkArity("display", args, 1, 1)

	var err error
	switch v := in.eval(args[0], env).(type) {
	case *String:
		_, err = io.WriteString(in.stdout, v.s)
	default:
		err = Encode(in.stdout, v)
	}
	if err != nil {
		panic(errorf("display", "write error: %v", err))
	}
	return Unspecified
}

func Newline(in *Interpreter, args []Value, env *Env) Value {
	checkArity("newline", args, 0, 0)
	if _, err := io.WriteString(in.stdout, "\n"); err != nil {
		panic(errorf("newline", "write error: %v", err))
	}
	return Unspecified
}

// Read returns the next datum from the interpreter's input, or Unspecified at
// the end of the input.
func Read(in *Interpreter, args []Value, env *Env) Value {
	checkArity("read", args, 0, 0)

	v, err := in.stdinReader().Read()
	if err == io.EOF {
		return Unspecified
	}
	if err != nil {
		panic(err)
	}
	return v
}

// Load reads and evaluates every datum in a file, in the environment load was
// called from.
func Load(in *Interpreter, args []Value, env *Env) Value {
	checkArity("load", args, 1, 1)

	path := in.evalString("load", args[0], env).s
	f, err := os.Open(path)
	if err != nil {
		panic(errorf("load", "could not load '%s': %v", path, err))
	}
	defer f.Close()

	in.load(in.NewReader(f), env, false)
	return Unspecified
}
