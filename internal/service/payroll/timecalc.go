package payroll

import (
	"fmt"
	"math"
	"time"

	"github.com/dashspecter/auditbuddy-automations-sub005/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var timeOfDayLayouts = []string{"15:04", "15:04:05"}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(value string) (hour, minute, second int, err error) {
	for _, layout := range timeOfDayLayouts {
		t, parseErr := time.Parse(layout, value)
		if parseErr == nil {
			return t.Hour(), t.Minute(), t.Second(), nil
		}
	}
	return 0, 0, 0, fmt.Errorf("%w: %q", payroll.ErrInvalidTimeOfDay, value)
}

// ScheduledMinutes returns the minutes between start and end on the shift date.
// An end at or before the start is moved forward 24h (overnight shift).
func ScheduledMinutes(date time.Time, start, end string, loc *time.Location) (int, error) {
	sh, sm, ss, err := ParseTimeOfDay(start)
	if err != nil {
		return 0, err
	}
	eh, em, es, err := ParseTimeOfDay(end)
	if err != nil {
		return 0, err
	}

	y, m, d := date.Date()
	startAt := time.Date(y, m, d, sh, sm, ss, 0, loc)
	endAt := time.Date(y, m, d, eh, em, es, 0, loc)
	if !endAt.After(startAt) {
		endAt = endAt.Add(24 * time.Hour)
	}
	return ElapsedMinutes(startAt, endAt), nil
}

// ElapsedMinutes returns whole minutes from -> to. Negative when to is before from.
func ElapsedMinutes(from, to time.Time) int {
	return int(to.Sub(from) / time.Minute)
}

// WeeksInPeriod returns ceil(days/7) between the two calendar dates, never below 1.
func WeeksInPeriod(start, end time.Time) int {
	days := calendarDays(start, end)
	weeks := int(math.Ceil(float64(days) / 7))
	if weeks < 1 {
		return 1
	}
	return weeks
}

func calendarDays(start, end time.Time) int {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	from := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	to := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// DateKey formats the calendar date used for date sets.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

func hoursFromMinutes(minutes int) float64 {
	return float64(minutes) / 60
}

func amountFor(hours float64, rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromFloat(hours).Mul(rate)
}

// ShiftOutcome classifies a reconciled shift.
type ShiftOutcome int

const (
	// OutcomePending is neither worked nor missed, e.g. clocked in but not yet out.
	OutcomePending ShiftOutcome = iota
	OutcomeWorked
	OutcomeMissed
)

func (o ShiftOutcome) String() string {
	switch o {
	case OutcomeWorked:
		return "worked"
	case OutcomeMissed:
		return "missed"
	default:
		return "pending"
	}
}

// ClassifyShift is the only worked/missed predicate. The entry builder and the
// period aggregator must both go through it.
func ClassifyShift(requiresCheckIn, attended bool, actualHours float64) ShiftOutcome {
	if requiresCheckIn && !attended {
		return OutcomeMissed
	}
	if actualHours > 0 || !requiresCheckIn {
		return OutcomeWorked
	}
	return OutcomePending
}

func outcomeOf(entry payroll.DailyPayrollEntry) ShiftOutcome {
	return ClassifyShift(entry.RequiresCheckIn, entry.Attended(), entry.ActualHours)
}
