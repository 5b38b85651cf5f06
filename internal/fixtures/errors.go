package fixtures

import (
	"errors"
	"fmt"
)

// ErrInvalidFixture is matched by every *ValidationError.
var ErrInvalidFixture = errors.New("invalid fixture")

// ValidationError describes a fixture that breaks one of the data invariants.
type ValidationError struct {
	Team   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Team == "" {
		return fmt.Sprintf("fixture %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("fixture team %q %s: %s", e.Team, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidFixture
}

func invalid(team, field, format string, args ...any) error {
	return &ValidationError{Team: team, Field: field, Reason: fmt.Sprintf(format, args...)}
}
