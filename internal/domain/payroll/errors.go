package payroll

import (
	"errors"
	"fmt"
)

var (
	ErrCompanyRequired  = errors.New("company_id claim is missing or invalid")
	ErrInvalidPeriod    = errors.New("invalid payroll period")
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
)

// ValidationError reports malformed schedule data that aborts a computation.
type ValidationError struct {
	ShiftID string
	Field   string
	Value   string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("shift %s: invalid %s %q: %v", e.ShiftID, e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
