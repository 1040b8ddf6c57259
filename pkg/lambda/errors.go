package lambda

import (
	"errors"
	"fmt"
)

// ParseError reports malformed surface syntax.
type ParseError struct {
	Pos      int // byte offset into the input
	Line     int
	Col      int
	Expected string
	Found    string
	EOF      bool // input ended before the construct was complete
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: expected %s, found %s", e.Line, e.Col, e.Expected, e.Found)
}

// IsIncomplete reports whether err is a parse error caused by the input
// ending too early, so that more input could still make it valid.
func IsIncomplete(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.EOF
}

// NotDefinedError reports an identifier with no definition.
type NotDefinedError struct {
	Name       string
	Suggestion string // a defined name close to Name, if any
}

func (e *NotDefinedError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s not defined (did you mean %s?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("%s not defined", e.Name)
}
