package payroll

import (
	"sort"

	"github.com/dashspecter/auditbuddy-automations-sub005/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// LocationRollup folds daily entries into per-location totals.
type LocationRollup struct{}

func NewLocationRollup() *LocationRollup {
	return &LocationRollup{}
}

func (r *LocationRollup) Aggregate(entries []payroll.DailyPayrollEntry) []payroll.LocationSummary {
	byLocation := make(map[string]*payroll.LocationSummary)

	for _, entry := range entries {
		summary, ok := byLocation[entry.LocationID]
		if !ok {
			summary = &payroll.LocationSummary{
				LocationID:   entry.LocationID,
				LocationName: entry.LocationName,
				TotalAmount:  decimal.Zero,
			}
			byLocation[entry.LocationID] = summary
		}

		hours := entry.ScheduledHours
		if entry.ActualHours > 0 {
			hours = entry.ActualHours
		}
		summary.TotalHours += hours
		summary.TotalAmount = summary.TotalAmount.Add(entry.DailyAmount)
		summary.ShiftCount++
	}

	result := make([]payroll.LocationSummary, 0, len(byLocation))
	for _, summary := range byLocation {
		result = append(result, *summary)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].LocationName != result[j].LocationName {
			return result[i].LocationName < result[j].LocationName
		}
		return result[i].LocationID < result[j].LocationID
	})

	return result
}
