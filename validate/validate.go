// Package validate re-checks values that know how to validate themselves.
//
// Semantic types validate on construction, so a constructed instance always
// passes; what Validate catches is the zero instance that was declared but
// never built, e.g. a struct field left unset:
//
//	type Book struct {
//	    ID tagged.ID[int, Book]
//	}
//
//	err := validate.Validate(ctx, Book{}.ID) // errors.ErrValidation + errors.ErrNullValue
//
// Unlike semantic.New, Validate has side effects: it records prometheus
// metrics and logs.
package validate

import (
	"context"
	"fmt"
	"time"

	"github.com/amp-labs/semtype/contexts"
	"github.com/amp-labs/semtype/errors"
	"github.com/amp-labs/semtype/logger"
	"github.com/amp-labs/semtype/utils"
)

// HasValidate defines the interface for types that can validate themselves without requiring a context.
// Every semantic.Type implements it.
type HasValidate interface {
	Validate() error
}

// HasValidateWithContext defines the interface for types that require a context during validation.
type HasValidateWithContext interface {
	Validate(ctx context.Context) error
}

// Validate performs validation on a value by checking if it implements either HasValidate or HasValidateWithContext.
// If the value implements neither interface or is nil, validation succeeds.
//
// Failures are wrapped with errors.ErrValidation, so errors.Is(err, errors.ErrValidation)
// holds for every failure, while the original error stays reachable through errors.Is/As.
func Validate(ctx context.Context, value any) error {
	//nolint:contextcheck // EnsureContext preserves context inheritance
	err := validateInternal(contexts.EnsureContext(ctx), value)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrValidation, err)
	}

	return nil
}

// All validates every value and returns all failures joined together, or nil.
func All(ctx context.Context, values ...any) error {
	var errs errors.Collection

	for _, value := range values {
		errs.Add(Validate(ctx, value))
	}

	return errs.GetError()
}

// validateInternal performs the actual validation logic by type-asserting the value
// against the validation interfaces. If a value implements both interfaces,
// HasValidate wins.
func validateInternal(ctx context.Context, value any) error {
	if utils.IsNilish(value) {
		recordCall(false, nil)

		return nil
	}

	typeName := fmt.Sprintf("%T", value)
	start := time.Now()

	var err error

	switch v := value.(type) {
	case HasValidate:
		err = v.Validate()
	case HasValidateWithContext:
		err = v.Validate(ctx)
	default:
		recordCall(false, nil)

		logger.Get(ctx).Warn("Validate called on unsupported type", "type", typeName)

		return nil
	}

	recordCall(true, err)
	recordDuration(typeName, err, time.Since(start))

	if err != nil {
		logger.Get(ctx).Debug("validation failed", "type", typeName, "error", err)
	}

	return err
}
