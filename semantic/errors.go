package semantic

import (
	"fmt"

	"github.com/amp-labs/semtype/errors"
)

// ValidationError is returned when a value is rejected by its semantic
// type's rule. It unwraps to errors.ErrValidation.
type ValidationError struct {
	// Type is the semantic type's name.
	Type string
	// Value is the rejected primitive.
	Value any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Type, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return errors.ErrValidation
}

// NullValueError is returned when asked to wrap an absent value, and by
// Validate on a zero instance. It unwraps to errors.ErrNullValue.
type NullValueError struct {
	Type string
}

func (e *NullValueError) Error() string {
	return e.Type + " cannot wrap an absent value"
}

func (e *NullValueError) Unwrap() error {
	return errors.ErrNullValue
}
