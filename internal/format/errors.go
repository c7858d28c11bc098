package format

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEmpty is returned when the template ends inside a placeholder.
var ErrUnexpectedEmpty = errors.New("unexpected end of string")

type UnrecognizedFormatError struct {
	Key string
}

func (e *UnrecognizedFormatError) Error() string {
	return fmt.Sprintf("value %s is not recognized", e.Key)
}

// UnexpectedCharError describes a structural mismatch. The placeholder
// grammar never produces it today.
type UnexpectedCharError struct {
	Found    rune
	Expected rune
}

func (e *UnexpectedCharError) Error() string {
	return fmt.Sprintf("expected char '%c', found '%c'", e.Expected, e.Found)
}
