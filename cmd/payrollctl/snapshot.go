package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dashspecter/auditbuddy-automations-sub005/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// shiftSnapshot is the JSON shape of one exported shift.
type shiftSnapshot struct {
	ID              string               `json:"id"`
	CompanyID       string               `json:"company_id"`
	LocationID      string               `json:"location_id"`
	LocationName    string               `json:"location_name"`
	RequiresCheckIn bool                 `json:"requires_check_in"`
	Role            string               `json:"role"`
	ShiftDate       string               `json:"shift_date"`
	StartTime       string               `json:"start_time"`
	EndTime         string               `json:"end_time"`
	Assignments     []assignmentSnapshot `json:"assignments"`
}

type assignmentSnapshot struct {
	ID         string            `json:"id"`
	EmployeeID string            `json:"employee_id"`
	Status     string            `json:"status"`
	Employee   *employeeSnapshot `json:"employee,omitempty"`
}

type employeeSnapshot struct {
	FullName              string           `json:"full_name"`
	HourlyRate            decimal.Decimal  `json:"hourly_rate"`
	OvertimeRate          *decimal.Decimal `json:"overtime_rate,omitempty"`
	ExpectedWeeklyHours   *float64         `json:"expected_weekly_hours,omitempty"`
	ExpectedShiftsPerWeek *int             `json:"expected_shifts_per_week,omitempty"`
}

type attendanceSnapshot struct {
	ID             string     `json:"id"`
	EmployeeID     string     `json:"employee_id"`
	ShiftID        *string    `json:"shift_id,omitempty"`
	LocationID     *string    `json:"location_id,omitempty"`
	CheckInAt      time.Time  `json:"check_in_at"`
	CheckOutAt     *time.Time `json:"check_out_at,omitempty"`
	IsLate         bool       `json:"is_late"`
	LateMinutes    int        `json:"late_minutes"`
	AutoClockedOut bool       `json:"auto_clocked_out"`
}

func readJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func loadShifts(path string) ([]payroll.ShiftRecord, error) {
	var snapshots []shiftSnapshot
	if err := readJSONFile(path, &snapshots); err != nil {
		return nil, err
	}

	shifts := make([]payroll.ShiftRecord, 0, len(snapshots))
	for _, s := range snapshots {
		date, err := time.Parse("2006-01-02", s.ShiftDate)
		if err != nil {
			return nil, fmt.Errorf("shift %s: invalid shift_date %q", s.ID, s.ShiftDate)
		}

		shift := payroll.ShiftRecord{
			ID:              s.ID,
			CompanyID:       s.CompanyID,
			LocationID:      s.LocationID,
			LocationName:    s.LocationName,
			RequiresCheckIn: s.RequiresCheckIn,
			Role:            s.Role,
			ShiftDate:       date,
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
		}
		for _, a := range s.Assignments {
			shift.Assignments = append(shift.Assignments, a.toAssignment(s.ID))
		}
		shifts = append(shifts, shift)
	}
	return shifts, nil
}

func (a assignmentSnapshot) toAssignment(shiftID string) payroll.ShiftAssignment {
	assignment := payroll.ShiftAssignment{
		ID:         a.ID,
		ShiftID:    shiftID,
		EmployeeID: a.EmployeeID,
		Status:     payroll.AssignmentStatus(a.Status),
	}
	if a.Employee != nil {
		assignment.Employee = &payroll.EmployeeRateProfile{
			EmployeeID:            a.EmployeeID,
			FullName:              a.Employee.FullName,
			HourlyRate:            a.Employee.HourlyRate,
			OvertimeRate:          a.Employee.OvertimeRate,
			ExpectedWeeklyHours:   a.Employee.ExpectedWeeklyHours,
			ExpectedShiftsPerWeek: a.Employee.ExpectedShiftsPerWeek,
		}
	}
	return assignment
}

func loadAttendance(path string) ([]payroll.AttendanceLog, error) {
	var snapshots []attendanceSnapshot
	if err := readJSONFile(path, &snapshots); err != nil {
		return nil, err
	}

	logs := make([]payroll.AttendanceLog, 0, len(snapshots))
	for _, s := range snapshots {
		logs = append(logs, payroll.AttendanceLog{
			ID:             s.ID,
			EmployeeID:     s.EmployeeID,
			ShiftID:        s.ShiftID,
			LocationID:     s.LocationID,
			CheckInAt:      s.CheckInAt,
			CheckOutAt:     s.CheckOutAt,
			IsLate:         s.IsLate,
			LateMinutes:    s.LateMinutes,
			AutoClockedOut: s.AutoClockedOut,
		})
	}
	return logs, nil
}
