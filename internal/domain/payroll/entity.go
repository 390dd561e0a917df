package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssignmentStatus enum
type AssignmentStatus string

const (
	AssignmentStatusApproved AssignmentStatus = "approved"
	AssignmentStatusPending  AssignmentStatus = "pending"
	AssignmentStatusRejected AssignmentStatus = "rejected"
)

// ShiftRecord - Scheduled shift with its assignments.
// EndTime <= StartTime means the shift ends on the next calendar day.
type ShiftRecord struct {
	ID              string
	CompanyID       string
	LocationID      string
	LocationName    string
	RequiresCheckIn bool
	Role            string
	ShiftDate       time.Time
	StartTime       string // HH:MM or HH:MM:SS, local to ShiftDate
	EndTime         string
	Assignments     []ShiftAssignment
}

// ShiftAssignment - Links a shift to one employee
type ShiftAssignment struct {
	ID         string
	ShiftID    string
	EmployeeID string
	Status     AssignmentStatus

	// Joined fields
	Employee *EmployeeRateProfile
}

// EmployeeRateProfile - Pay rate and weekly quota of an employee
type EmployeeRateProfile struct {
	EmployeeID            string
	FullName              string
	HourlyRate            decimal.Decimal
	OvertimeRate          *decimal.Decimal
	ExpectedWeeklyHours   *float64
	ExpectedShiftsPerWeek *int
}

// HasOvertimePremium reports whether the overtime rate exceeds the hourly rate.
func (p EmployeeRateProfile) HasOvertimePremium() bool {
	return p.OvertimeRate != nil && p.OvertimeRate.GreaterThan(p.HourlyRate)
}

// AttendanceLog - Check-in / check-out event
type AttendanceLog struct {
	ID             string
	EmployeeID     string
	ShiftID        *string
	LocationID     *string
	CheckInAt      time.Time
	CheckOutAt     *time.Time // nil while still clocked in
	IsLate         bool
	LateMinutes    int
	AutoClockedOut bool
}

// DailyPayrollEntry - One reconciled (employee, shift) row
type DailyPayrollEntry struct {
	EmployeeID      string           `json:"employee_id"`
	EmployeeName    string           `json:"employee_name"`
	ShiftID         string           `json:"shift_id"`
	ShiftDate       string           `json:"shift_date"`
	LocationID      string           `json:"location_id"`
	LocationName    string           `json:"location_name"`
	Role            string           `json:"role"`
	ScheduledHours  float64          `json:"scheduled_hours"`
	ActualHours     float64          `json:"actual_hours"`
	HourlyRate      decimal.Decimal  `json:"hourly_rate"`
	OvertimeRate    *decimal.Decimal `json:"overtime_rate,omitempty"`
	DailyAmount     decimal.Decimal  `json:"daily_amount"`
	IsLate          bool             `json:"is_late"`
	LateMinutes     int              `json:"late_minutes"`
	AutoClockedOut  bool             `json:"auto_clocked_out"`
	RequiresCheckIn bool             `json:"requires_check_in"`
	IsMissed        bool             `json:"is_missed"`
	AttendanceLogID *string          `json:"attendance_log_id,omitempty"`
	IsAnomalous     bool             `json:"is_anomalous"`
	AnomalyReason   string           `json:"anomaly_reason,omitempty"`
}

// Attended reports whether an attendance log was matched to the entry.
func (e DailyPayrollEntry) Attended() bool {
	return e.AttendanceLogID != nil
}

// PayrollSummaryItem - Per-employee totals for the period
type PayrollSummaryItem struct {
	EmployeeID      string           `json:"employee_id"`
	EmployeeName    string           `json:"employee_name"`
	HourlyRate      decimal.Decimal  `json:"hourly_rate"`
	OvertimeRate    *decimal.Decimal `json:"overtime_rate,omitempty"`
	ScheduledHours  float64          `json:"scheduled_hours"`
	ActualHours     float64          `json:"actual_hours"`
	OvertimeHours   float64          `json:"overtime_hours"`
	UndertimeHours  float64          `json:"undertime_hours"`
	TotalAmount     decimal.Decimal  `json:"total_amount"`
	OvertimePay     decimal.Decimal  `json:"overtime_pay"`
	DaysWorked      int              `json:"days_worked"`
	LateCount       int              `json:"late_count"`
	LateMinutes     int              `json:"late_minutes"`
	ExpectedShifts  *int             `json:"expected_shifts,omitempty"`
	ExtraShifts     int              `json:"extra_shifts"`
	MissingShifts   int              `json:"missing_shifts"`
	WorkedDates     []string         `json:"worked_dates"`
	MissedDates     []string         `json:"missed_dates"`
	ExtraShiftDates []string         `json:"extra_shift_dates"`
}

// LocationSummary - Per-location totals for the period
type LocationSummary struct {
	LocationID   string          `json:"location_id"`
	LocationName string          `json:"location_name"`
	TotalHours   float64         `json:"total_hours"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	ShiftCount   int             `json:"shift_count"`
}

// PayrollResult - Output of one payroll computation
type PayrollResult struct {
	PeriodStart     string               `json:"period_start"`
	PeriodEnd       string               `json:"period_end"`
	LocationID      *string              `json:"location_id,omitempty"`
	WeeksInPeriod   int                  `json:"weeks_in_period"`
	Entries         []DailyPayrollEntry  `json:"entries"`
	Summary         []PayrollSummaryItem `json:"summary"`
	LocationSummary []LocationSummary    `json:"location_summary"`
}
