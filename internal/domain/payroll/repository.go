package payroll

import (
	"context"
	"time"
)

// ScheduleSource supplies shifts with approved assignments and employee rate metadata.
// All methods include companyID parameter to prevent cross-company data access attacks.
type ScheduleSource interface {
	// ListShifts returns shifts dated within [start, end], optionally for one location
	ListShifts(ctx context.Context, companyID string, start, end time.Time, locationID *string) ([]ShiftRecord, error)
}

// AttendanceSource supplies check-in/check-out events for the same range.
type AttendanceSource interface {
	// ListAttendanceLogs returns logs whose check-in falls on a date in [start, end+1 day].
	// The extra day covers check-ins of overnight shifts starting on end.
	ListAttendanceLogs(ctx context.Context, companyID string, start, end time.Time) ([]AttendanceLog, error)
}
