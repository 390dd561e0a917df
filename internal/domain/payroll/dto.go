package payroll

import (
	"time"

	"github.com/dashspecter/auditbuddy-automations-sub005/internal/pkg/validator"
	"github.com/google/uuid"
)

// MaxPeriodDays bounds a single preview request.
const MaxPeriodDays = 366

// ========== PREVIEW DTOs ==========

type PreviewPayrollRequest struct {
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	LocationID *string `json:"location_id,omitempty"`
}

func (r *PreviewPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "is required"})
	} else if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "is required"})
	} else if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be in YYYY-MM-DD format"})
	}

	if startOK && endOK {
		if end.Before(start) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
		} else if end.Sub(start) > MaxPeriodDays*24*time.Hour {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "period must not exceed " + validator.Itoa(MaxPeriodDays) + " days"})
		}
	}

	if r.LocationID != nil {
		if _, err := uuid.Parse(*r.LocationID); err != nil {
			errs = append(errs, validator.ValidationError{Field: "location_id", Message: "must be a valid UUID"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Period returns the parsed start and end dates. Call Validate first.
func (r *PreviewPayrollRequest) Period() (time.Time, time.Time, error) {
	start, ok := validator.IsValidDate(r.StartDate)
	if !ok {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
	end, ok := validator.IsValidDate(r.EndDate)
	if !ok || end.Before(start) {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
	return start, end, nil
}
