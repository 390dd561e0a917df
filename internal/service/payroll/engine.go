package payroll

import (
	"log/slog"
	"time"

	"github.com/dashspecter/auditbuddy-automations-sub005/internal/domain/payroll"
)

// Engine reconciles schedule and attendance snapshots into payroll. It holds
// no state between calls; identical inputs always give identical results.
type Engine struct {
	builder   *EntryBuilder
	period    *PeriodAggregator
	locations *LocationRollup
	logger    *slog.Logger
}

func NewEngine(location *time.Location, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		builder:   NewEntryBuilder(location, logger),
		period:    NewPeriodAggregator(logger),
		locations: NewLocationRollup(),
		logger:    logger,
	}
}

type attendanceKey struct {
	employeeID string
	shiftID    string
}

// Compute builds one entry per approved (shift, assignment) and aggregates them.
// A malformed shift time fails the whole computation with *payroll.ValidationError.
func (e *Engine) Compute(
	shifts []payroll.ShiftRecord,
	logs []payroll.AttendanceLog,
	periodStart, periodEnd time.Time,
	locationFilter *string,
) (payroll.PayrollResult, error) {
	logIndex := indexAttendance(logs)
	profiles := make(map[string]payroll.EmployeeRateProfile)
	entries := make([]payroll.DailyPayrollEntry, 0, len(shifts))

	for _, shift := range shifts {
		if locationFilter != nil && shift.LocationID != *locationFilter {
			continue
		}

		for _, assignment := range shift.Assignments {
			if assignment.Status != payroll.AssignmentStatusApproved {
				continue
			}
			if assignment.Employee == nil {
				e.logger.Warn("Skipping assignment without employee rate profile",
					"employee_id", assignment.EmployeeID,
					"shift_id", shift.ID,
					"assignment_id", assignment.ID,
				)
				continue
			}

			profile := *assignment.Employee
			if profile.EmployeeID == "" {
				profile.EmployeeID = assignment.EmployeeID
			}
			if _, ok := profiles[assignment.EmployeeID]; !ok {
				profiles[assignment.EmployeeID] = profile
			}

			key := attendanceKey{employeeID: assignment.EmployeeID, shiftID: shift.ID}
			entry, err := e.builder.Build(shift, assignment, profile, logIndex[key])
			if err != nil {
				return payroll.PayrollResult{}, err
			}
			entries = append(entries, entry)
		}
	}

	weeks := WeeksInPeriod(periodStart, periodEnd)

	var location *string
	if locationFilter != nil {
		id := *locationFilter
		location = &id
	}

	return payroll.PayrollResult{
		PeriodStart:     DateKey(periodStart),
		PeriodEnd:       DateKey(periodEnd),
		LocationID:      location,
		WeeksInPeriod:   weeks,
		Entries:         entries,
		Summary:         e.period.Aggregate(entries, profiles, weeks),
		LocationSummary: e.locations.Aggregate(entries),
	}, nil
}

// indexAttendance groups logs by (employee, shift), keeping source order.
// Logs without a shift reference cannot satisfy any shift.
func indexAttendance(logs []payroll.AttendanceLog) map[attendanceKey][]payroll.AttendanceLog {
	index := make(map[attendanceKey][]payroll.AttendanceLog)
	for _, log := range logs {
		if log.ShiftID == nil {
			continue
		}
		key := attendanceKey{employeeID: log.EmployeeID, shiftID: *log.ShiftID}
		index[key] = append(index[key], log)
	}
	return index
}
