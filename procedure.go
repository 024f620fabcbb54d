package ponyo

import (
	"fmt"
	"io"
)

// PrimitiveFunc implements a primitive procedure. args holds the operands of
// the application unevaluated; each primitive decides which of them to
// evaluate in env, and in what order.
type PrimitiveFunc func(in *Interpreter, args []Value, env *Env) Value

// Primitive is a procedure implemented in Go. Special forms are primitives
// that do not evaluate all of their operands.
type Primitive struct {
	name string
	fn   PrimitiveFunc
}

// NewPrimitive returns a primitive procedure.
func NewPrimitive(name string, fn PrimitiveFunc) *Primitive {
	return &Primitive{name: name, fn: fn}
}

// Name returns the name the primitive reports in errors.
func (p *Primitive) Name() string {
	return p.name
}

func (p *Primitive) write(w io.Writer) error {
	_, err := io.WriteString(w, "#<primitive-procedure>")
	return err
}

// Lambda is a compound procedure: a parameter list, a body and the
// environment the procedure was created in.
type Lambda struct {
	name   string
	params Value
	body   []Value
	env    *Env
}

// newLambda validates params and returns a compound procedure. who names the
// form that is creating the procedure.
func newLambda(who, name string, params Value, body []Value, env *Env) *Lambda {
	const invalidParams = "parameters must be a list of symbols, optionally ending in . symbol"

	seen := map[*Symbol]bool{}
	declare := func(v Value) {
		sym, ok := v.(*Symbol)
		if !ok {
			panic(errorf(who, invalidParams))
		}
		if seen[sym] {
			panic(errorf(who, "duplicate parameter %s", sym.name))
		}
		seen[sym] = true
	}

	p := params
	for {
		pair, ok := p.(*Pair)
		if !ok {
			break
		}
		declare(pair.car)
		p = pair.cdr
	}
	if p != EmptyList {
		declare(p)
	}

	if len(body) == 0 {
		panic(errorf(who, "procedure body is empty"))
	}

	return &Lambda{name: name, params: params, body: body, env: env}
}

// Name returns the name of the procedure, or "lambda" if it is anonymous.
func (l *Lambda) Name() string {
	if l.name == "" {
		return "lambda"
	}
	return l.name
}

// Params returns the parameter list of the procedure.
func (l *Lambda) Params() Value {
	return l.params
}

func (l *Lambda) write(w io.Writer) error {
	_, err := io.WriteString(w, "#<compound-procedure>")
	return err
}

func isProcedure(v Value) bool {
	switch v.(type) {
	case *Primitive, *Lambda:
		return true
	default:
		return false
	}
}

func ProcedurePred(in *Interpreter, args []Value, env *Env) Value {
	checkArity("procedure?", args, 1, 1)
	return Boolean(isProcedure(in.eval(args[0], env)))
}

// ProcedureApply implements (apply proc arg ... list). The elements of the
// final list have already been evaluated, so each one is wrapped in a quote
// form before the application to keep it from being evaluated again. The
// operands between proc and list are passed through unevaluated.
func ProcedureApply(in *Interpreter, args []Value, env *Env) Value {
	checkArity("apply", args, 2, -1)

	proc := in.eval(args[0], env)
	if !isProcedure(proc) {
		panic(errorf("apply", "expected procedure, got %s", typeName(proc)))
	}

	tail := in.evalList("apply", args[len(args)-1], env)

	operands := make([]Value, 0, len(args)-2+len(tail))
	operands = append(operands, args[1:len(args)-1]...)
	for _, v := range tail {
		operands = append(operands, List(in.quote, v))
	}
	return in.apply(proc, List(operands...), env)
}

// checkArity panics unless min <= len(args) <= max. A negative max means
// there is no upper bound.
func checkArity(name string, args []Value, min, max int) {
	n := len(args)
	if n >= min && (max < 0 || n <= max) {
		return
	}

	switch {
	case min == max:
		panic(errorf(name, "expected %s, got %d", arguments(min), n))
	case max < 0:
		panic(errorf(name, "expected at least %s, got %d", arguments(min), n))
	default:
		panic(errorf(name, "expected %d to %s, got %d", min, arguments(max), n))
	}
}

func arguments(n int) string {
	if n == 1 {
		return "1 argument"
	}
	return fmt.Sprintf("%d arguments", n)
}

func describeList(v Value) string {
	if _, ok := v.(*Pair); ok {
		return "improper or cyclic list"
	}
	return typeName(v)
}
