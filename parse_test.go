package ponyo

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPrint(t *testing.T) {
	cases := []struct{ input, expected string }{
		{"42", "42"},
		{"-12", "-12"},
		{"9223372036854775807", "9223372036854775807"},
		{"-9223372036854775808", "-9223372036854775808"},
		{"#t", "#t"},
		{"#f", "#f"},
		{"()", "()"},
		{"(  )", "()"},
		{"abc", "abc"},
		{"-", "-"},
		{"-a", "-a"},
		{"...", "..."},
		{"<=?", "<=?"},
		{"set-car!", "set-car!"},
		{"a1", "a1"},
		{"(1 . 2)", "(1 . 2)"},
		{"(a b . c)", "(a b . c)"},
		{"(a . (b c))", "(a b c)"},
		{"(a . ())", "(a)"},
		{"(- 1)", "(- 1)"},
		{"(a ...)", "(a ...)"},
		{"((1) (2 (3)))", "((1) (2 (3)))"},
		{"'x", "(quote x)"},
		{"'(1 'b)", "(quote (1 (quote b)))"},
		{"; comment\n 42", "42"},
		{"(a ; comment\n b)", "(a b)"},
		{`"a\tb"`, `"a\tb"`},
		{`"line\nbreak"`, `"line\nbreak"`},
		{`"cr\r"`, `"cr\r"`},
		{`"\"q\" \\"`, `"\"q\" \\"`},
		{`"\a"`, `"a"`},
		{`""`, `""`},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			in, _ := newTestInterpreter(t, Config{NoPrelude: true})
			vals, err := in.ReadString(c.input)
			require.NoError(t, err)
			require.Len(t, vals, 1)
			assert.Equal(t, c.expected, EncodeToString(vals[0]))

			// The printed form reads back to the same text.
			again, err := in.ReadString(c.expected)
			require.NoError(t, err)
			require.Len(t, again, 1)
			assert.Equal(t, c.expected, EncodeToString(again[0]))
		})
	}
}

func TestReadErrors(t *testing.T) {
	cases := []struct {
		name       string
		input      string
		expected   string
		incomplete bool
	}{
		{"unterminated-list", "(1 2", "line 1: unterminated list", true},
		{"unterminated-dotted", "(1 .", "line 1: unterminated list", true},
		{"unterminated-dotted-tail", "(1 . 2", "line 1: unterminated list", true},
		{"unterminated-string", `"abc`, "line 1: unterminated string", true},
		{"unterminated-escape", `"abc\`, "line 1: unterminated string", true},
		{"dangling-quote", "'", "line 1: dangling quote", true},
		{"dangling-hash-eof", "#", "line 1: dangling '#'", true},
		{"dangling-hash", "# t", "line 1: dangling '#'", false},
		{"invalid-hash", "#x", "line 1: invalid '#x' prefix", false},
		{"close-paren", ")", "line 1: unexpected character ')'", false},
		{"lone-dot", ".", "line 1: unexpected '.'", false},
		{"leading-dot", "(. a)", "line 1: unexpected '.'", false},
		{"dot-no-tail", "(a .)", "line 1: unexpected character ')'", false},
		{"dot-two-tails", "(a . b c)", "line 1: expected list terminator", false},
		{"bracket", "[", "line 1: unexpected character '['", false},
		{"out-of-range", "99999999999999999999", "line 1: integer literal out of range: 99999999999999999999", false},
		{"string-too-long", `"` + strings.Repeat("a", maxStringLen+1) + `"`, "line 1: string too long", false},
		{"identifier-too-long", strings.Repeat("a", maxSymbolLen+1), "line 1: identifier too long", false},
		{"line-number", "\n\n(1", "line 3: unterminated list", true},
		{"line-number-comment", "; one\n; two\n)", "line 3: unexpected character ')'", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in, _ := newTestInterpreter(t, Config{NoPrelude: true})
			_, err := in.ReadString(c.input)
			require.Error(t, err)
			assert.EqualError(t, err, c.expected)
			assert.Equal(t, c.incomplete, IsIncomplete(err))

			serr, ok := err.(*SyntaxError)
			require.True(t, ok)
			assert.Equal(t, c.incomplete, serr.Incomplete())
		})
	}
}

func TestReadLimits(t *testing.T) {
	in, _ := newTestInterpreter(t, Config{NoPrelude: true})

	s := strings.Repeat("a", maxStringLen)
	vals, err := in.ReadString(`"` + s + `"`)
	require.NoError(t, err)
	require.Len(t, vals, 1)
	assert.Equal(t, s, vals[0].(*String).String())

	id := strings.Repeat("b", maxSymbolLen)
	vals, err = in.ReadString(id)
	require.NoError(t, err)
	require.Len(t, vals, 1)
	assert.Equal(t, id, vals[0].(*Symbol).Name())
}

func TestReaderStream(t *testing.T) {
	in, _ := newTestInterpreter(t, Config{NoPrelude: true})

	rd := in.NewReader(strings.NewReader("1 (2 3)\n  ; trailing comment\n"))

	v, err := rd.Read()
	require.NoError(t, err)
	assert.Equal(t, Integer(1), v)

	v, err = rd.Read()
	require.NoError(t, err)
	assert.Equal(t, "(2 3)", EncodeToString(v))

	_, err = rd.Read()
	assert.Equal(t, io.EOF, err)

	vals, err := in.ReadString("")
	require.NoError(t, err)
	assert.Empty(t, vals)
}
