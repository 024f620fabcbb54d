package ponyo

import (
	"io"
	"strings"
)

// Reader reads data from a character stream. Symbols are interned into the
// symbol table of the Interpreter that created the Reader.
type Reader struct {
	p *parser
}

// NewReader returns a Reader that reads from r.
func (in *Interpreter) NewReader(r io.Reader) *Reader {
	return &Reader{p: &parser{l: newLexer(r, in.symbols)}}
}

// Read returns the next datum. It returns io.EOF when the input is exhausted
// and a *SyntaxError for malformed input.
func (r *Reader) Read() (Value, error) {
	return r.p.parseExpression()
}

// ReadAll reads every datum from r.
func (in *Interpreter) ReadAll(r io.Reader) ([]Value, error) {
	rd := in.NewReader(r)

	var vals []Value
	for {
		v, err := rd.Read()
		if err == io.EOF {
			return vals, nil
		}
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
}

// ReadString reads every datum from s.
func (in *Interpreter) ReadString(s string) ([]Value, error) {
	return in.ReadAll(strings.NewReader(s))
}

type parser struct {
	l      *lexer
	t      interface{}
	peeked bool
}

func (p *parser) peek() (interface{}, error) {
	if !p.peeked {
		t, err := p.l.next()
		if err != nil {
			return nil, err
		}
		p.t, p.peeked = t, true
	}
	return p.t, nil
}

func (p *parser) next() (interface{}, error) {
	if p.peeked {
		p.peeked = false
		return p.t, nil
	}
	return p.l.next()
}

func (p *parser) parseExpression() (Value, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch tok := tok.(type) {
	case Value:
		return tok, nil
	case rune:
		switch tok {
		case '(':
			return p.parseList()
		case '\'':
			el, err := p.parseExpression()
			if err == io.EOF {
				return nil, p.l.incompletef("dangling quote")
			}
			if err != nil {
				return nil, err
			}
			return List(p.l.symbols.intern("quote"), el), nil
		case '.':
			return nil, p.l.errorf("unexpected '.'")
		default:
			return nil, p.l.errorf("unexpected character '%c'", tok)
		}
	default:
		return nil, p.l.errorf("unexpected token %v", tok)
	}
}

// parseList assumes that the opening '(' has already been read.
func (p *parser) parseList() (Value, error) {
	var head, tail *Pair
	for {
		tok, err := p.peek()
		if err == io.EOF {
			return nil, p.l.incompletef("unterminated list")
		}
		if err != nil {
			return nil, err
		}

		switch tok {
		case ')':
			p.next()
			if head == nil {
				return EmptyList, nil
			}
			return head, nil
		case '.':
			if head == nil {
				return nil, p.l.errorf("unexpected '.'")
			}
			p.next()

			last, err := p.parseExpression()
			if err == io.EOF {
				return nil, p.l.incompletef("unterminated list")
			}
			if err != nil {
				return nil, err
			}

			tok, err := p.next()
			if err == io.EOF {
				return nil, p.l.incompletef("unterminated list")
			}
			if err != nil {
				return nil, err
			}
			if tok != ')' {
				return nil, p.l.errorf("expected list terminator")
			}

			tail.cdr = last
			return head, nil
		}

		el, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		e := &Pair{car: el, cdr: EmptyList}
		if head == nil {
			head, tail = e, e
		} else {
			tail.cdr, tail = e, e
		}
	}
}
