package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dashspecter/auditbuddy-automations-sub005/internal/domain/auth"
	"github.com/dashspecter/auditbuddy-automations-sub005/internal/domain/payroll"
	"github.com/dashspecter/auditbuddy-automations-sub005/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Malformed schedule data
	var shiftErr *payroll.ValidationError
	if errors.As(err, &shiftErr) {
		details := map[string]string{"shift_id": shiftErr.ShiftID}
		details[shiftErr.Field] = shiftErr.Err.Error()
		ValidationError(w, details)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrCompanyRequired):
		Forbidden(w, "Company membership required")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
