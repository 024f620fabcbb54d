package ponyo

import (
	"io"
	"strconv"
	"strings"
)

// Value is a runtime datum: a Boolean, the EmptyList, an Integer, a *Pair, a
// *String, a *Symbol, a procedure or Unspecified.
type Value interface {
	write(w io.Writer) error
}

// Encode writes the textual representation of v to w. The output of Encode
// can be read back by a Reader for every value except procedures and
// Unspecified.
func Encode(w io.Writer, v Value) error {
	return v.write(w)
}

// EncodeToString returns the textual representation of v.
func EncodeToString(v Value) string {
	var b strings.Builder
	Encode(&b, v)
	return b.String()
}

// Boolean
type Boolean bool

const (
	False = Boolean(false)
	True  = Boolean(true)
)

func (b Boolean) write(w io.Writer) error {
	text := "#t"
	if !b {
		text = "#f"
	}
	_, err := io.WriteString(w, text)
	return err
}

// Truthy returns the truth value of v. Any value besides False is considered
// true, including 0, the empty list and the empty string.
func Truthy(v Value) bool {
	return v != False
}

// Null is the type of the empty list.
type Null struct{}

// EmptyList terminates proper lists.
var EmptyList = Null{}

func (Null) write(w io.Writer) error {
	_, err := io.WriteString(w, "()")
	return err
}

// Void is the type of Unspecified.
type Void struct{}

// Unspecified is the result of forms that are evaluated purely for effect.
var Unspecified = Void{}

func (Void) write(w io.Writer) error {
	_, err := io.WriteString(w, "#<void>")
	return err
}

// Integer is a fixed-width signed integer. Arithmetic wraps on overflow.
type Integer int64

func (i Integer) write(w io.Writer) error {
	_, err := io.WriteString(w, strconv.FormatInt(int64(i), 10))
	return err
}

// Pair
type Pair struct {
	car Value
	cdr Value
}

// Cons returns a newly allocated pair.
func Cons(car, cdr Value) *Pair {
	return &Pair{car: car, cdr: cdr}
}

// Car returns the car field of the pair.
func (p *Pair) Car() Value {
	return p.car
}

// Cdr returns the cdr field of the pair.
func (p *Pair) Cdr() Value {
	return p.cdr
}

// SetCar replaces the car field of the pair.
func (p *Pair) SetCar(v Value) {
	p.car = v
}

// SetCdr replaces the cdr field of the pair.
func (p *Pair) SetCdr(v Value) {
	p.cdr = v
}

func (p *Pair) write(w io.Writer) error {
	if _, err := io.WriteString(w, "("); err != nil {
		return err
	}

	// slow trails p at half speed so that a cycle in the cdr chain is
	// detected instead of printed forever.
	slow := p
	for i := 0; ; i++ {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if err := Encode(w, p.car); err != nil {
			return err
		}

		next, ok := p.cdr.(*Pair)
		if !ok {
			if p.cdr != EmptyList {
				if _, err := io.WriteString(w, " . "); err != nil {
					return err
				}
				if err := Encode(w, p.cdr); err != nil {
					return err
				}
			}
			break
		}
		p = next

		if i%2 == 1 {
			slow = slow.cdr.(*Pair)
			if slow == p {
				if _, err := io.WriteString(w, " ..."); err != nil {
					return err
				}
				break
			}
		}
	}

	_, err := io.WriteString(w, ")")
	return err
}

// List returns a newly allocated proper list of vals.
func List(vals ...Value) Value {
	var head Value = EmptyList
	for i := len(vals) - 1; i >= 0; i-- {
		head = &Pair{car: vals[i], cdr: head}
	}
	return head
}

// ListToSlice returns the elements of a proper list. It returns false if v is
// an improper or cyclic list.
func ListToSlice(v Value) ([]Value, bool) {
	var vals []Value
	slow := v
	for {
		p, ok := v.(*Pair)
		if !ok {
			return vals, v == EmptyList
		}
		vals, v = append(vals, p.car), p.cdr

		if len(vals)%2 == 0 {
			slow = slow.(*Pair).cdr
			if slow == v {
				return nil, false
			}
		}
	}
}

// String is an immutable string. Two strings with the same text are
// distinct values unless they were produced by the same allocation.
type String struct {
	s string
}

// NewString returns a newly allocated string.
func NewString(s string) *String {
	return &String{s: s}
}

func (s *String) String() string {
	return s.s
}

func (s *String) write(w io.Writer) error {
	var b strings.Builder
	b.Grow(len(s.s) + 2)
	b.WriteByte('"')
	for _, c := range s.s {
		switch c {
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\n':
			b.WriteString(`\n`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(c)
		}
	}
	b.WriteByte('"')
	_, err := io.WriteString(w, b.String())
	return err
}

// typeName returns the name used for v's type in error messages.
func typeName(v Value) string {
	switch v.(type) {
	case Boolean:
		return "boolean"
	case Null:
		return "empty list"
	case Void:
		return "void"
	case Integer:
		return "integer"
	case *Pair:
		return "pair"
	case *String:
		return "string"
	case *Symbol:
		return "symbol"
	case *Primitive:
		return "primitive procedure"
	case *Lambda:
		return "compound procedure"
	default:
		return "unknown"
	}
}
