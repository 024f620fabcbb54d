package ponyo

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	maxStringLen = 2000
	maxSymbolLen = 200

	eof = -1
)

const extendedSymbolChars = "!$%&*+-./:<=>?@^_~"

type lexer struct {
	r       *bufio.Reader
	symbols *symbolTable
	line    int
	last    rune
}

func newLexer(r io.Reader, symbols *symbolTable) *lexer {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &lexer{r: br, symbols: symbols, line: 1}
}

func (l *lexer) errorf(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Line: l.line, Msg: fmt.Sprintf(format, args...)}
}

func (l *lexer) incompletef(format string, args ...interface{}) *SyntaxError {
	err := l.errorf(format, args...)
	err.incomplete = true
	return err
}

func (l *lexer) read() (rune, error) {
	c, _, err := l.r.ReadRune()
	if err != nil {
		if err == io.EOF {
			l.last = eof
			return eof, nil
		}
		return 0, l.errorf("read error: %v", err)
	}
	if c == '\n' {
		l.line++
	}
	l.last = c
	return c, nil
}

func (l *lexer) unread() {
	if l.last == eof {
		return
	}
	if l.last == '\n' {
		l.line--
	}
	l.r.UnreadRune()
	l.last = eof
}

func (l *lexer) peek() (rune, error) {
	c, err := l.read()
	if err != nil {
		return 0, err
	}
	l.unread()
	return c, nil
}

// skip consumes whitespace and line comments and returns the first rune that
// follows them.
func (l *lexer) skip() (rune, error) {
	for {
		c, err := l.read()
		if err != nil {
			return 0, err
		}

		switch {
		case isSpace(c):
			// skip
		case c == ';':
			for c != '\n' && c != eof {
				if c, err = l.read(); err != nil {
					return 0, err
				}
			}
		default:
			return c, nil
		}
	}
}

// next returns the next token: a Value for atoms, a rune for '(', ')', '\''
// and '.', or io.EOF at the end of the input.
func (l *lexer) next() (interface{}, error) {
	c, err := l.skip()
	if err != nil {
		return nil, err
	}

	switch {
	case c == eof:
		return nil, io.EOF
	case c == '(' || c == ')' || c == '\'':
		return c, nil
	case c == '#':
		return l.boolean()
	case c == '"':
		return l.string()
	case isDigit(c):
		return l.integer(c)
	case c == '-' || c == '.':
		k, err := l.peek()
		if err != nil {
			return nil, err
		}
		if c == '-' && isDigit(k) {
			return l.integer(c)
		}
		if c == '.' && !continuesSymbol(k) {
			return c, nil
		}
		return l.symbol(c)
	case beginsSymbol(c):
		return l.symbol(c)
	default:
		return nil, l.errorf("unexpected character '%c'", c)
	}
}

// boolean assumes that a '#' has already been read.
func (l *lexer) boolean() (interface{}, error) {
	c, err := l.read()
	if err != nil {
		return nil, err
	}

	switch {
	case c == 't':
		return True, nil
	case c == 'f':
		return False, nil
	case c == eof:
		return nil, l.incompletef("dangling '#'")
	case isSpace(c) || c == ';':
		return nil, l.errorf("dangling '#'")
	default:
		return nil, l.errorf("invalid '#%c' prefix", c)
	}
}

func (l *lexer) integer(first rune) (interface{}, error) {
	var text strings.Builder
	text.WriteRune(first)

	for {
		c, err := l.read()
		if err != nil {
			return nil, err
		}
		if !isDigit(c) {
			l.unread()
			break
		}
		text.WriteRune(c)
	}

	i, err := strconv.ParseInt(text.String(), 10, 64)
	if err != nil {
		return nil, l.errorf("integer literal out of range: %s", text.String())
	}
	return Integer(i), nil
}

// string assumes that the opening '"' has already been read.
func (l *lexer) string() (interface{}, error) {
	var s strings.Builder
	for n := 0; ; n++ {
		c, err := l.read()
		if err != nil {
			return nil, err
		}

		switch c {
		case '"':
			return NewString(s.String()), nil
		case eof:
			return nil, l.incompletef("unterminated string")
		case '\\':
			k, err := l.read()
			if err != nil {
				return nil, err
			}
			switch k {
			case eof:
				return nil, l.incompletef("unterminated string")
			case 't':
				c = '\t'
			case 'r':
				c = '\r'
			case 'n':
				c = '\n'
			default:
				c = k
			}
		}

		if n == maxStringLen {
			return nil, l.errorf("string too long")
		}
		s.WriteRune(c)
	}
}

func (l *lexer) symbol(first rune) (interface{}, error) {
	var id strings.Builder
	id.WriteRune(first)

	for n := 1; ; n++ {
		c, err := l.read()
		if err != nil {
			return nil, err
		}
		if !continuesSymbol(c) {
			l.unread()
			return l.symbols.intern(id.String()), nil
		}
		if n == maxSymbolLen {
			return nil, l.errorf("identifier too long")
		}
		id.WriteRune(c)
	}
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

func beginsSymbol(c rune) bool {
	return isAlpha(c) || c >= 0 && strings.ContainsRune(extendedSymbolChars, c)
}

func continuesSymbol(c rune) bool {
	return isDigit(c) || beginsSymbol(c)
}
