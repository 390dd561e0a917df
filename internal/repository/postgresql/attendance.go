package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/dashspecter/auditbuddy-automations-sub005/internal/domain/payroll"
	"github.com/dashspecter/auditbuddy-automations-sub005/internal/pkg/database"
)

type attendanceRepository struct {
	db       *database.DB
	location *time.Location
}

// NewAttendanceRepository returns an AttendanceSource whose date bounds are
// calendar days in location (UTC when nil).
func NewAttendanceRepository(db *database.DB, location *time.Location) payroll.AttendanceSource {
	if location == nil {
		location = time.UTC
	}
	return &attendanceRepository{db: db, location: location}
}

// ListAttendanceLogs implements payroll.AttendanceSource.
func (a *attendanceRepository) ListAttendanceLogs(ctx context.Context, companyID string, start, end time.Time) ([]payroll.AttendanceLog, error) {
	q := GetQuerier(ctx, a.db)

	from, until := a.checkInBounds(start, end)

	query := `
		SELECT id, employee_id, shift_id, location_id,
			   check_in_at, check_out_at, is_late, late_minutes, auto_clocked_out
		FROM attendance_logs
		WHERE company_id = $1
		  AND check_in_at >= $2
		  AND check_in_at < $3
		ORDER BY check_in_at, id
	`

	rows, err := q.Query(ctx, query, companyID, from, until)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance logs: %w", err)
	}
	defer rows.Close()

	logs := make([]payroll.AttendanceLog, 0)
	for rows.Next() {
		var log payroll.AttendanceLog
		var lateMinutes int32
		if err := rows.Scan(
			&log.ID, &log.EmployeeID, &log.ShiftID, &log.LocationID,
			&log.CheckInAt, &log.CheckOutAt, &log.IsLate, &lateMinutes, &log.AutoClockedOut,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		log.LateMinutes = int(lateMinutes)
		logs = append(logs, log)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance logs: %w", err)
	}

	return logs, nil
}

// checkInBounds returns [start 00:00, end+2 days 00:00) so check-ins dated
// start through end+1 are included.
func (a *attendanceRepository) checkInBounds(start, end time.Time) (time.Time, time.Time) {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	return time.Date(sy, sm, sd, 0, 0, 0, 0, a.location),
		time.Date(ey, em, ed+2, 0, 0, 0, 0, a.location)
}
