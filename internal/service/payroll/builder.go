package payroll

import (
	"log/slog"
	"time"

	"github.com/dashspecter/auditbuddy-automations-sub005/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

const anomalyCheckoutBeforeCheckin = "checkout_before_checkin"

// EntryBuilder reconciles one (shift, assignment) pair against attendance.
type EntryBuilder struct {
	location *time.Location
	logger   *slog.Logger
}

func NewEntryBuilder(location *time.Location, logger *slog.Logger) *EntryBuilder {
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &EntryBuilder{location: location, logger: logger}
}

// Build produces the DailyPayrollEntry for the assignment. logs may contain
// unrelated records; only those matching both employee and shift are considered.
func (b *EntryBuilder) Build(
	shift payroll.ShiftRecord,
	assignment payroll.ShiftAssignment,
	profile payroll.EmployeeRateProfile,
	logs []payroll.AttendanceLog,
) (payroll.DailyPayrollEntry, error) {
	scheduledMinutes, err := b.scheduledMinutes(shift)
	if err != nil {
		return payroll.DailyPayrollEntry{}, err
	}
	scheduledHours := hoursFromMinutes(scheduledMinutes)

	entry := payroll.DailyPayrollEntry{
		EmployeeID:      assignment.EmployeeID,
		EmployeeName:    profile.FullName,
		ShiftID:         shift.ID,
		ShiftDate:       DateKey(shift.ShiftDate),
		LocationID:      shift.LocationID,
		LocationName:    shift.LocationName,
		Role:            shift.Role,
		ScheduledHours:  scheduledHours,
		HourlyRate:      profile.HourlyRate,
		OvertimeRate:    profile.OvertimeRate,
		RequiresCheckIn: shift.RequiresCheckIn,
	}

	if log := b.matchAttendance(shift, assignment, logs); log != nil {
		logID := log.ID
		entry.AttendanceLogID = &logID
		entry.IsLate = log.IsLate
		if log.IsLate {
			entry.LateMinutes = log.LateMinutes
		}
		entry.AutoClockedOut = log.AutoClockedOut

		if log.CheckOutAt != nil {
			minutes := ElapsedMinutes(log.CheckInAt, *log.CheckOutAt)
			if minutes < 0 {
				b.logger.Warn("Attendance checkout before checkin, clamping actual hours",
					"employee_id", assignment.EmployeeID,
					"shift_id", shift.ID,
					"attendance_log_id", log.ID,
					"minutes", minutes,
				)
				minutes = 0
				entry.IsAnomalous = true
				entry.AnomalyReason = anomalyCheckoutBeforeCheckin
			}
			entry.ActualHours = hoursFromMinutes(minutes)
		}
	}

	entry.IsMissed = outcomeOf(entry) == OutcomeMissed

	switch {
	case entry.IsMissed:
		entry.DailyAmount = decimal.Zero
	case entry.ActualHours > 0:
		entry.DailyAmount = amountFor(entry.ActualHours, profile.HourlyRate)
	default:
		entry.DailyAmount = amountFor(entry.ScheduledHours, profile.HourlyRate)
	}

	return entry, nil
}

func (b *EntryBuilder) scheduledMinutes(shift payroll.ShiftRecord) (int, error) {
	if _, _, _, err := ParseTimeOfDay(shift.StartTime); err != nil {
		return 0, &payroll.ValidationError{ShiftID: shift.ID, Field: "start_time", Value: shift.StartTime, Err: err}
	}
	minutes, err := ScheduledMinutes(shift.ShiftDate, shift.StartTime, shift.EndTime, b.location)
	if err != nil {
		return 0, &payroll.ValidationError{ShiftID: shift.ID, Field: "end_time", Value: shift.EndTime, Err: err}
	}
	return minutes, nil
}

// matchAttendance picks the log for this employee and shift. When several
// match, the earliest check-in wins; equal check-ins keep source order.
func (b *EntryBuilder) matchAttendance(
	shift payroll.ShiftRecord,
	assignment payroll.ShiftAssignment,
	logs []payroll.AttendanceLog,
) *payroll.AttendanceLog {
	var matched *payroll.AttendanceLog
	count := 0
	for i := range logs {
		log := &logs[i]
		if log.EmployeeID != assignment.EmployeeID || log.ShiftID == nil || *log.ShiftID != shift.ID {
			continue
		}
		count++
		if matched == nil || log.CheckInAt.Before(matched.CheckInAt) {
			matched = log
		}
	}

	if count > 1 {
		b.logger.Warn("Multiple attendance logs match one shift, using earliest check-in",
			"employee_id", assignment.EmployeeID,
			"shift_id", shift.ID,
			"match_count", count,
			"attendance_log_id", matched.ID,
		)
	}
	return matched
}
