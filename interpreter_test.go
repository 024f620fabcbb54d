package ponyo

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPrint(t *testing.T) {
	in, out := newTestInterpreter(t, Config{})

	err := in.Run(strings.NewReader(`(define x 1) x (display "hi") 'a (newline)`), true)
	require.NoError(t, err)
	assert.Equal(t, "1\nhia\n\n", out.String())
}

func TestRunStopsAtError(t *testing.T) {
	in, out := newTestInterpreter(t, Config{})

	err := in.Run(strings.NewReader(`(display 1) (car '()) (display 2)`), false)
	assert.EqualError(t, err, "car: expected pair, got empty list")
	assert.Equal(t, "1", out.String())
}

func TestDisplay(t *testing.T) {
	in, out := newTestInterpreter(t, Config{})

	_, err := in.EvalString(`(display "a\tb") (display '(1 "x")) (display #f)`)
	require.NoError(t, err)
	assert.Equal(t, "a\tb(1 \"x\")#f", out.String())
}

func TestErrorIsolation(t *testing.T) {
	in, _ := newTestInterpreter(t, Config{})

	forms, err := in.ReadString("(define x 1) (car x) (+ x 1)")
	require.NoError(t, err)
	require.Len(t, forms, 3)

	_, err = in.Eval(forms[0])
	require.NoError(t, err)

	_, err = in.Eval(forms[1])
	assert.EqualError(t, err, "car: expected pair, got integer")
	e, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, "car", e.Who)

	v, err := in.Eval(forms[2])
	require.NoError(t, err)
	assert.Equal(t, Integer(2), v)
}

func TestEvalIn(t *testing.T) {
	in, _ := newTestInterpreter(t, Config{})

	env := NewEnv(in.Global())
	env.Define(in.Intern("y"), Integer(41))

	forms, err := in.ReadString("(define z (+ y 1))")
	require.NoError(t, err)
	_, err = in.EvalIn(forms[0], env)
	require.NoError(t, err)

	v, ok := env.Lookup(in.Intern("z"))
	require.True(t, ok)
	assert.Equal(t, Integer(42), v)

	_, ok = in.Global().Lookup(in.Intern("z"))
	assert.False(t, ok)
}

func TestMaxDepth(t *testing.T) {
	in, _ := newTestInterpreter(t, Config{MaxDepth: 100})

	_, err := in.EvalString(`(define (f n) (if (= n 0) 0 (+ 1 (f (- n 1)))))`)
	require.NoError(t, err)

	_, err = in.EvalString("(f 1000)")
	assert.EqualError(t, err, "f: maximum recursion depth exceeded")

	// The depth unwinds after an error.
	v, err := in.EvalString("(f 50)")
	require.NoError(t, err)
	assert.Equal(t, Integer(50), v)
}

func TestDeepRecursion(t *testing.T) {
	in, _ := newTestInterpreter(t, Config{})

	v, err := in.EvalString(`
		(define (count n) (if (= n 0) 0 (+ 1 (count (- n 1)))))
		(count 10000)`)
	require.NoError(t, err)
	assert.Equal(t, Integer(10000), v)
}

func TestLongLists(t *testing.T) {
	in, _ := newTestInterpreter(t, Config{MaxDepth: 100})

	vals := make([]Value, 20000)
	for i := range vals {
		vals[i] = Integer(i)
	}
	in.Global().Define(in.Intern("big"), List(vals...))

	cases := []struct{ expr, expected string }{
		{"(length big)", "20000"},
		{"(length (map (lambda (x) (* x 2)) big))", "20000"},
		{"(car (reverse big))", "19999"},
		{"(length (append big big))", "40000"},
	}
	for _, c := range cases {
		t.Run(c.expr, func(t *testing.T) {
			v, err := in.EvalString(c.expr)
			require.NoError(t, err)
			assert.Equal(t, c.expected, EncodeToString(v))
		})
	}
}

func TestNoPrelude(t *testing.T) {
	in, _ := newTestInterpreter(t, Config{NoPrelude: true})

	_, err := in.EvalString("(abs -1)")
	assert.EqualError(t, err, "unbound variable: abs")

	v, err := in.EvalString("(car '(1))")
	require.NoError(t, err)
	assert.Equal(t, Integer(1), v)
}

func TestReadPrimitive(t *testing.T) {
	in, _ := newTestInterpreter(t, Config{Stdin: strings.NewReader("(1 2) foo")})

	v, err := in.EvalString("(read)")
	require.NoError(t, err)
	assert.Equal(t, "(1 2)", EncodeToString(v))

	// The datum is returned as data, not evaluated.
	v, err = in.EvalString("(read)")
	require.NoError(t, err)
	assert.Same(t, in.Intern("foo"), v)

	v, err = in.EvalString("(read)")
	require.NoError(t, err)
	assert.Equal(t, Unspecified, v)
}

func TestReadSharesRunInput(t *testing.T) {
	src := strings.NewReader("(display (read)) foo (display (read))")
	in, out := newTestInterpreter(t, Config{Stdin: src})

	require.NoError(t, in.Run(src, true))
	assert.Equal(t, "foo#<void>", out.String())
}

func TestReadPrimitiveError(t *testing.T) {
	in, _ := newTestInterpreter(t, Config{Stdin: strings.NewReader("(1 2")})

	_, err := in.EvalString("(read)")
	assert.EqualError(t, err, "line 1: unterminated list")
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, ioutil.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "lib.scm", "(define loaded 42)\n(define (twice x) (* 2 x))\n")

	in, _ := newTestInterpreter(t, Config{})
	v, err := in.EvalString(fmt.Sprintf("(load %q) (twice loaded)", path))
	require.NoError(t, err)
	assert.Equal(t, Integer(84), v)
}

func TestLoadIntoCallerScope(t *testing.T) {
	path := writeFile(t, "lib.scm", "(define loaded 42)")

	in, _ := newTestInterpreter(t, Config{})
	v, err := in.EvalString(fmt.Sprintf("((lambda () (load %q) loaded))", path))
	require.NoError(t, err)
	assert.Equal(t, Integer(42), v)

	_, err = in.EvalString("loaded")
	assert.EqualError(t, err, "unbound variable: loaded")
}

func TestLoadErrors(t *testing.T) {
	in, _ := newTestInterpreter(t, Config{})

	_, err := in.EvalString(`(load "/nonexistent/lib.scm")`)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "load: could not load '/nonexistent/lib.scm': "))

	path := writeFile(t, "bad.scm", "(define a 1)\n(car a)\n(define b 2)")
	_, err = in.EvalString(fmt.Sprintf("(load %q)", path))
	assert.EqualError(t, err, "car: expected pair, got integer")

	v, err := in.EvalString("a")
	require.NoError(t, err)
	assert.Equal(t, Integer(1), v)

	_, err = in.EvalString("b")
	assert.EqualError(t, err, "unbound variable: b")
}

func TestApplyDoesNotReevaluate(t *testing.T) {
	in, _ := newTestInterpreter(t, Config{})

	// Without quoting, applying to the symbol undefined would fail.
	v, err := in.EvalString("(apply (lambda (x) x) '(undefined))")
	require.NoError(t, err)
	assert.Same(t, in.Intern("undefined"), v)

	v, err = in.EvalString("(apply list '((car '(1))))")
	require.NoError(t, err)
	assert.Equal(t, "((car (quote (1))))", EncodeToString(v))
}
