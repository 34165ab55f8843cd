package descriptor

import (
	"errors"
	"fmt"
)

var ErrInvalidDescriptor = errors.New("invalid descriptor")

// Returns new *ValidationError for descriptor at path.
func NewValidationError(path, reason string) *ValidationError {
	return &ValidationError{Path: path, Reason: reason}
}

// ValidationError reports a descriptor that cannot be resolved.
type ValidationError struct {
	Path   string
	Reason string
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf("%s at %s: %s", ErrInvalidDescriptor, err.Path, err.Reason)
}

func (err *ValidationError) Unwrap() error {
	return ErrInvalidDescriptor
}
