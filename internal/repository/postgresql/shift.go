package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/dashspecter/auditbuddy-automations-sub005/internal/domain/payroll"
	"github.com/dashspecter/auditbuddy-automations-sub005/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) payroll.ScheduleSource {
	return &shiftRepository{db: db}
}

// shiftRow is one (shift, approved assignment) row of the join. Assignment and
// employee columns are NULL for shifts nobody is approved for.
type shiftRow struct {
	ShiftID         string
	CompanyID       string
	LocationID      string
	LocationName    string
	RequiresCheckIn bool
	Role            string
	ShiftDate       time.Time
	StartTime       string
	EndTime         string

	AssignmentID     *string
	AssignmentEmpID  *string
	AssignmentStatus *string

	EmployeeID            *string
	FullName              *string
	HourlyRate            decimal.NullDecimal
	OvertimeRate          decimal.NullDecimal
	ExpectedWeeklyHours   *float64
	ExpectedShiftsPerWeek *int32
}

// ListShifts implements payroll.ScheduleSource.
func (r *shiftRepository) ListShifts(ctx context.Context, companyID string, start, end time.Time, locationID *string) ([]payroll.ShiftRecord, error) {
	q := GetQuerier(ctx, r.db)

	where := "s.company_id = $1 AND s.shift_date >= $2 AND s.shift_date <= $3"
	args := []interface{}{companyID, start.Format("2006-01-02"), end.Format("2006-01-02")}

	if locationID != nil && *locationID != "" {
		where += " AND s.location_id = $4"
		args = append(args, *locationID)
	}

	query := fmt.Sprintf(`
		SELECT s.id, s.company_id, s.location_id, l.name, l.requires_check_in, s.role, s.shift_date,
			   s.start_time::text, s.end_time::text,
			   a.id, a.employee_id, a.status,
			   e.id, e.full_name, e.hourly_rate, e.overtime_rate,
			   e.expected_weekly_hours, e.expected_shifts_per_week
		FROM shifts s
		JOIN locations l ON l.id = s.location_id AND l.company_id = s.company_id
		LEFT JOIN shift_assignments a ON a.shift_id = s.id
			AND a.company_id = s.company_id
			AND a.status = 'approved'
		LEFT JOIN employees e ON e.id = a.employee_id AND e.company_id = s.company_id
		WHERE %s
		ORDER BY s.shift_date, s.start_time, s.id, a.id
	`, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	shifts := make([]payroll.ShiftRecord, 0)
	index := make(map[string]int)

	for rows.Next() {
		var row shiftRow
		if err := rows.Scan(
			&row.ShiftID, &row.CompanyID, &row.LocationID, &row.LocationName, &row.RequiresCheckIn, &row.Role, &row.ShiftDate,
			&row.StartTime, &row.EndTime,
			&row.AssignmentID, &row.AssignmentEmpID, &row.AssignmentStatus,
			&row.EmployeeID, &row.FullName, &row.HourlyRate, &row.OvertimeRate,
			&row.ExpectedWeeklyHours, &row.ExpectedShiftsPerWeek,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}

		i, ok := index[row.ShiftID]
		if !ok {
			shifts = append(shifts, payroll.ShiftRecord{
				ID:              row.ShiftID,
				CompanyID:       row.CompanyID,
				LocationID:      row.LocationID,
				LocationName:    row.LocationName,
				RequiresCheckIn: row.RequiresCheckIn,
				Role:            row.Role,
				ShiftDate:       row.ShiftDate,
				StartTime:       row.StartTime,
				EndTime:         row.EndTime,
			})
			i = len(shifts) - 1
			index[row.ShiftID] = i
		}

		if row.AssignmentID != nil {
			shifts[i].Assignments = append(shifts[i].Assignments, row.assignment())
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shifts: %w", err)
	}

	return shifts, nil
}

func (row shiftRow) assignment() payroll.ShiftAssignment {
	assignment := payroll.ShiftAssignment{
		ID:      *row.AssignmentID,
		ShiftID: row.ShiftID,
	}
	if row.AssignmentEmpID != nil {
		assignment.EmployeeID = *row.AssignmentEmpID
	}
	if row.AssignmentStatus != nil {
		assignment.Status = payroll.AssignmentStatus(*row.AssignmentStatus)
	}

	// Employee row missing or without a rate: leave the profile nil.
	if row.EmployeeID == nil || !row.HourlyRate.Valid {
		return assignment
	}

	profile := &payroll.EmployeeRateProfile{
		EmployeeID:          *row.EmployeeID,
		HourlyRate:          row.HourlyRate.Decimal,
		ExpectedWeeklyHours: row.ExpectedWeeklyHours,
	}
	if row.FullName != nil {
		profile.FullName = *row.FullName
	}
	if row.OvertimeRate.Valid {
		rate := row.OvertimeRate.Decimal
		profile.OvertimeRate = &rate
	}
	if row.ExpectedShiftsPerWeek != nil {
		perWeek := int(*row.ExpectedShiftsPerWeek)
		profile.ExpectedShiftsPerWeek = &perWeek
	}
	assignment.Employee = profile

	return assignment
}
