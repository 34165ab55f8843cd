package typeinspect

import (
	"errors"
	"fmt"
)

var (
	_ error = new(InvalidListTypeError)

	// Matches every *InvalidListTypeError with errors.Is.
	ErrInvalidListType = errors.New("invalid list type")
)

// Returns new *InvalidListTypeError for t.
func NewInvalidListTypeError(t Type) *InvalidListTypeError {
	return &InvalidListTypeError{Type: t}
}

// Error returned when a type expected to be list-like has no generic arguments.
type InvalidListTypeError struct {
	Type Type
}

// Implementation of error.
func (err *InvalidListTypeError) Error() string {
	return fmt.Sprintf("%s: %s has no type arguments", ErrInvalidListType, err.Type)
}

// Reports whether target is ErrInvalidListType.
func (err *InvalidListTypeError) Is(target error) bool {
	return target == ErrInvalidListType
}
