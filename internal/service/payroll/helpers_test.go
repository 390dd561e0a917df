package payroll

import (
	"io"
	"log/slog"
	"time"

	"github.com/dashspecter/auditbuddy-automations-sub005/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

const (
	testLocationA = "0191f5d2-7a3c-7d4e-9b1a-1c2d3e4f5a61"
	testLocationB = "0191f5d2-7a3c-7d4e-9b1a-1c2d3e4f5a62"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustDate(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func mustInstant(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func decPtr(value string) *decimal.Decimal {
	d := dec(value)
	return &d
}

func strPtr(value string) *string {
	return &value
}

func intPtr(value int) *int {
	return &value
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func testProfile(id, name, rate string) *payroll.EmployeeRateProfile {
	return &payroll.EmployeeRateProfile{
		EmployeeID: id,
		FullName:   name,
		HourlyRate: dec(rate),
	}
}

func testShift(id, date, start, end string, requiresCheckIn bool, assignees ...*payroll.EmployeeRateProfile) payroll.ShiftRecord {
	shift := payroll.ShiftRecord{
		ID:              id,
		CompanyID:       "company-1",
		LocationID:      testLocationA,
		LocationName:    "Main Store",
		RequiresCheckIn: requiresCheckIn,
		Role:            "cashier",
		ShiftDate:       mustDate(date),
		StartTime:       start,
		EndTime:         end,
	}
	for _, profile := range assignees {
		shift.Assignments = append(shift.Assignments, payroll.ShiftAssignment{
			ID:         "asg-" + id + "-" + profile.EmployeeID,
			ShiftID:    id,
			EmployeeID: profile.EmployeeID,
			Status:     payroll.AssignmentStatusApproved,
			Employee:   profile,
		})
	}
	return shift
}

func testLog(id, employeeID, shiftID, checkIn, checkOut string) payroll.AttendanceLog {
	log := payroll.AttendanceLog{
		ID:         id,
		EmployeeID: employeeID,
		ShiftID:    strPtr(shiftID),
		CheckInAt:  mustInstant(checkIn),
	}
	if checkOut != "" {
		log.CheckOutAt = timePtr(mustInstant(checkOut))
	}
	return log
}
