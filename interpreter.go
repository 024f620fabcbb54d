package ponyo

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Config configures an Interpreter.
type Config struct {
	// Stdout receives the output of display and newline. Defaults to
	// os.Stdout.
	Stdout io.Writer
	// Stdin is the input of the read primitive. Defaults to os.Stdin.
	Stdin io.Reader
	// MaxDepth bounds the number of nested compound procedure applications.
	// Zero means no bound other than the Go stack.
	MaxDepth int
	// NoPrelude skips loading the procedures defined in Scheme.
	NoPrelude bool
}

// Interpreter is one interpreter session. It owns a symbol table and a global
// environment; separate Interpreters share nothing. An Interpreter must not be
// used by more than one goroutine at a time.
type Interpreter struct {
	symbols *symbolTable
	global  *Env

	stdout io.Writer
	stdin  io.Reader
	input  *Reader

	maxDepth int
	depth    int

	symElse *Symbol
	quote   *Primitive
}

// New returns a new interpreter whose global environment holds the primitive
// procedures and, unless config.NoPrelude is set, the prelude.
func New(config Config) (*Interpreter, error) {
	in := &Interpreter{
		symbols:  newSymbolTable(),
		global:   NewEnv(nil),
		stdout:   config.Stdout,
		stdin:    config.Stdin,
		maxDepth: config.MaxDepth,
	}
	if in.stdout == nil {
		in.stdout = os.Stdout
	}
	if in.stdin == nil {
		in.stdin = os.Stdin
	}
	in.symElse = in.Intern("else")

	for _, p := range primitives {
		prim := NewPrimitive(p.name, p.fn)
		if p.name == "quote" {
			in.quote = prim
		}
		in.global.Define(in.Intern(p.name), prim)
	}

	if !config.NoPrelude {
		if err := in.Run(strings.NewReader(prelude), false); err != nil {
			return nil, fmt.Errorf("loading prelude: %w", err)
		}
	}
	return in, nil
}

// Intern returns the symbol named name, creating it if necessary.
func (in *Interpreter) Intern(name string) *Symbol {
	return in.symbols.intern(name)
}

// Symbols returns every symbol interned so far, in the order they were
// created.
func (in *Interpreter) Symbols() []*Symbol {
	return append([]*Symbol(nil), in.symbols.order...)
}

// Global returns the global environment.
func (in *Interpreter) Global() *Env {
	return in.global
}

// Eval evaluates v in the global environment.
func (in *Interpreter) Eval(v Value) (Value, error) {
	return in.EvalIn(v, in.global)
}

// EvalIn evaluates v in env. A failure aborts the evaluation of v and is
// returned as an *Error; the interpreter remains usable afterwards.
func (in *Interpreter) EvalIn(v Value, env *Env) (result Value, err error) {
	defer in.catch(&err)
	return in.eval(v, env), nil
}

// EvalString reads and evaluates every datum in src and returns the value of
// the last one. It stops at the first error.
func (in *Interpreter) EvalString(src string) (result Value, err error) {
	defer in.catch(&err)

	rd := in.NewReader(strings.NewReader(src))
	var last Value = Unspecified
	for {
		x, err := rd.Read()
		if err == io.EOF {
			return last, nil
		}
		if err != nil {
			return nil, err
		}
		last = in.eval(x, in.global)
	}
}

// Run reads and evaluates every datum in r in the global environment. If
// print is true, each result other than Unspecified is written to the
// interpreter's output followed by a newline. Run stops at the first error.
//
// If r is the interpreter's configured input, Run reads it through the same
// Reader as the read primitive, so (read) returns the datum that follows the
// form being evaluated.
func (in *Interpreter) Run(r io.Reader, print bool) (err error) {
	defer in.catch(&err)

	rd := in.NewReader(r)
	if r == in.stdin {
		rd = in.stdinReader()
	}
	in.load(rd, in.global, print)
	return nil
}

// stdinReader returns the Reader over the interpreter's configured input,
// creating it on first use.
func (in *Interpreter) stdinReader() *Reader {
	if in.input == nil {
		in.input = in.NewReader(in.stdin)
	}
	return in.input
}

func (in *Interpreter) load(rd *Reader, env *Env, print bool) {
	for {
		x, err := rd.Read()
		if err == io.EOF {
			return
		}
		if err != nil {
			panic(err)
		}

		v := in.eval(x, env)
		if print && v != Unspecified {
			in.print(v)
		}
	}
}

func (in *Interpreter) print(v Value) {
	if err := Encode(in.stdout, v); err != nil {
		panic(errorf("", "write error: %v", err))
	}
	if _, err := io.WriteString(in.stdout, "\n"); err != nil {
		panic(errorf("", "write error: %v", err))
	}
}

// catch recovers interpretation errors into *err. Other panics propagate.
func (in *Interpreter) catch(err *error) {
	switch x := recover().(type) {
	case nil:
	case *Error:
		*err = x
	case *SyntaxError:
		*err = x
	default:
		panic(x)
	}
}
