package ponyo

import (
	"errors"
	"fmt"
)

// Error is a fatal interpretation error. Who names the special form or
// primitive that failed; it is empty for errors raised by the evaluator
// itself (unbound variables, invalid applications).
type Error struct {
	Who string
	Msg string
}

func (e *Error) Error() string {
	if e.Who == "" {
		return e.Msg
	}
	return e.Who + ": " + e.Msg
}

func errorf(who, format string, args ...interface{}) *Error {
	return &Error{Who: who, Msg: fmt.Sprintf(format, args...)}
}

// SyntaxError is returned by the reader for malformed input.
type SyntaxError struct {
	Line int
	Msg  string

	incomplete bool
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Incomplete returns true if the error was caused by the input ending in the
// middle of a datum. Supplying more input may resolve it.
func (e *SyntaxError) Incomplete() bool {
	return e.incomplete
}

// IsIncomplete reports whether err is a *SyntaxError caused by premature end
// of input.
func IsIncomplete(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se) && se.incomplete
}
