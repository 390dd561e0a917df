package payroll

import (
	"log/slog"
	"sort"

	"github.com/dashspecter/auditbuddy-automations-sub005/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// PeriodAggregator folds daily entries into one summary per employee.
type PeriodAggregator struct {
	logger *slog.Logger
}

func NewPeriodAggregator(logger *slog.Logger) *PeriodAggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &PeriodAggregator{logger: logger}
}

// employeeAccumulator is owned by a single Aggregate call.
type employeeAccumulator struct {
	profile payroll.EmployeeRateProfile
	item    payroll.PayrollSummaryItem
	worked  map[string]struct{}
	missed  map[string]struct{}
	entries []payroll.DailyPayrollEntry
}

func newEmployeeAccumulator(profile payroll.EmployeeRateProfile) *employeeAccumulator {
	return &employeeAccumulator{
		profile: profile,
		item: payroll.PayrollSummaryItem{
			EmployeeID:   profile.EmployeeID,
			EmployeeName: profile.FullName,
			HourlyRate:   profile.HourlyRate,
			OvertimeRate: profile.OvertimeRate,
			TotalAmount:  decimal.Zero,
			OvertimePay:  decimal.Zero,
		},
		worked: make(map[string]struct{}),
		missed: make(map[string]struct{}),
	}
}

// Aggregate returns summaries ordered by employee name, then id. Entries whose
// employee has no profile are dropped. weeksInPeriod below 1 is treated as 1.
func (a *PeriodAggregator) Aggregate(
	entries []payroll.DailyPayrollEntry,
	profiles map[string]payroll.EmployeeRateProfile,
	weeksInPeriod int,
) []payroll.PayrollSummaryItem {
	if weeksInPeriod < 1 {
		weeksInPeriod = 1
	}

	accumulators := make(map[string]*employeeAccumulator)
	dropped := make(map[string]struct{})

	for _, entry := range entries {
		profile, ok := profiles[entry.EmployeeID]
		if !ok {
			if _, seen := dropped[entry.EmployeeID]; !seen {
				dropped[entry.EmployeeID] = struct{}{}
				a.logger.Warn("Dropping payroll entries for employee without rate profile",
					"employee_id", entry.EmployeeID,
					"shift_id", entry.ShiftID,
				)
			}
			continue
		}

		acc, ok := accumulators[entry.EmployeeID]
		if !ok {
			acc = newEmployeeAccumulator(profile)
			accumulators[entry.EmployeeID] = acc
		}
		acc.add(entry)
	}

	result := make([]payroll.PayrollSummaryItem, 0, len(accumulators))
	for _, acc := range accumulators {
		result = append(result, acc.finalize(weeksInPeriod))
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].EmployeeName != result[j].EmployeeName {
			return result[i].EmployeeName < result[j].EmployeeName
		}
		return result[i].EmployeeID < result[j].EmployeeID
	})

	return result
}

func (acc *employeeAccumulator) add(entry payroll.DailyPayrollEntry) {
	wasWorked := outcomeOf(entry) == OutcomeWorked
	wasMissed := entry.IsMissed

	acc.item.ScheduledHours += entry.ScheduledHours
	acc.item.ActualHours += entry.ActualHours
	acc.item.TotalAmount = acc.item.TotalAmount.Add(entry.DailyAmount)

	if wasWorked {
		acc.item.DaysWorked++
		acc.worked[entry.ShiftDate] = struct{}{}
	}
	if wasMissed {
		acc.missed[entry.ShiftDate] = struct{}{}
	}
	if entry.IsLate {
		acc.item.LateCount++
		acc.item.LateMinutes += entry.LateMinutes
	}

	acc.entries = append(acc.entries, entry)
}

func (acc *employeeAccumulator) finalize(weeksInPeriod int) payroll.PayrollSummaryItem {
	item := acc.item
	item.WorkedDates = sortedDates(acc.worked)
	item.MissedDates = sortedDates(acc.missed)
	item.ExtraShiftDates = []string{}

	// Hour-based overtime/undertime. A no-show is a missing shift, not undertime.
	diff := item.ActualHours - item.ScheduledHours
	if diff > 0 {
		item.OvertimeHours = diff
	} else if diff < 0 && item.ActualHours > 0 {
		item.UndertimeHours = -diff
	}

	// Quota-based extra/missing shifts.
	if acc.profile.ExpectedShiftsPerWeek != nil {
		expected := *acc.profile.ExpectedShiftsPerWeek * weeksInPeriod
		item.ExpectedShifts = &expected

		shiftDiff := item.DaysWorked - expected
		if shiftDiff > 0 {
			item.ExtraShifts = shiftDiff
			item.ExtraShiftDates = lastDates(item.WorkedDates, shiftDiff)
		} else if shiftDiff < 0 {
			item.MissingShifts = -shiftDiff
		}
	}

	if len(item.ExtraShiftDates) > 0 && acc.profile.HasOvertimePremium() {
		item.OvertimePay = acc.overtimePay(item.ExtraShiftDates)
		item.TotalAmount = item.TotalAmount.Add(item.OvertimePay)
	}

	return item
}

// overtimePay sums the rate differential over every entry on an extra-shift date.
func (acc *employeeAccumulator) overtimePay(extraDates []string) decimal.Decimal {
	extra := make(map[string]struct{}, len(extraDates))
	for _, d := range extraDates {
		extra[d] = struct{}{}
	}

	premium := acc.profile.OvertimeRate.Sub(acc.profile.HourlyRate)
	pay := decimal.Zero
	for _, entry := range acc.entries {
		if _, ok := extra[entry.ShiftDate]; !ok {
			continue
		}
		hoursWorked := entry.ScheduledHours
		if entry.ActualHours > 0 {
			hoursWorked = entry.ActualHours
		}
		pay = pay.Add(amountFor(hoursWorked, premium))
	}
	return pay
}

func sortedDates(set map[string]struct{}) []string {
	dates := make([]string, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// lastDates returns the most recent n dates of an ascending list, as a new slice.
func lastDates(sorted []string, n int) []string {
	if n > len(sorted) {
		n = len(sorted)
	}
	out := make([]string, n)
	copy(out, sorted[len(sorted)-n:])
	return out
}
