/*
errors.go - Error types for the payroll package

PURPOSE:
  Constructors and setters reject numeric fields that would break an
  employee's invariants. There is exactly one failure kind: an invalid
  argument. Callers match it with errors.Is(err, ErrInvalidArgument) and
  can inspect the offending field with errors.As.

USAGE:
  _, err := payroll.NewHourlyEmployee("Shalom", "Leibovich", 123, -1, 20.5)
  if errors.Is(err, payroll.ErrInvalidArgument) {
      var invalid *payroll.InvalidArgumentError
      errors.As(err, &invalid) // invalid.Field == "hours"
  }

SEE ALSO:
  - hourly.go, commission.go: Call the validators below
  - factory/roster.go: Wraps these errors with the roster position
*/
package payroll

import (
	"errors"
	"fmt"
	"math"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidArgument is returned when a numeric field would violate its
	// non-negativity or range constraint.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownKind is returned when a kind name does not match any variant.
	ErrUnknownKind = errors.New("unknown employee kind")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidArgumentError names the field and value that were rejected.
type InvalidArgumentError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s=%v %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// =============================================================================
// VALIDATORS - Shared by constructors and setters
// =============================================================================

const (
	minPercentage = 0
	maxPercentage = 100
)

// nonNegative also rejects NaN and ±Inf, which decimal cannot represent.
func nonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidArgumentError{Field: field, Value: v, Reason: "must be a finite non-negative number"}
	}
	if v < 0 {
		return &InvalidArgumentError{Field: field, Value: v, Reason: "must be non-negative"}
	}
	return nil
}

func nonNegativeInt(field string, v int) error {
	if v < 0 {
		return &InvalidArgumentError{Field: field, Value: v, Reason: "must be non-negative"}
	}
	return nil
}

func percentage(field string, v int) error {
	if v < minPercentage || v > maxPercentage {
		return &InvalidArgumentError{
			Field:  field,
			Value:  v,
			Reason: fmt.Sprintf("must be between %d and %d", minPercentage, maxPercentage),
		}
	}
	return nil
}
