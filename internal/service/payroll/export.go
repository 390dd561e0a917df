package payroll

import (
	"fmt"
	"strings"

	"github.com/dashspecter/auditbuddy-automations-sub005/internal/domain/payroll"
	"github.com/xuri/excelize/v2"
)

const (
	sheetEntries   = "Entries"
	sheetSummary   = "Summary"
	sheetLocations = "Locations"
)

var (
	entryHeaders = []interface{}{
		"Date", "Employee ID", "Employee", "Location", "Role", "Scheduled Hours", "Actual Hours",
		"Hourly Rate", "Daily Amount", "Late", "Late Minutes", "Auto Clock-Out",
		"Requires Check-In", "Missed", "Anomaly",
	}
	summaryHeaders = []interface{}{
		"Employee ID", "Employee", "Scheduled Hours", "Actual Hours", "Overtime Hours", "Undertime Hours",
		"Days Worked", "Late Count", "Late Minutes", "Expected Shifts", "Extra Shifts", "Missing Shifts",
		"Overtime Pay", "Total Amount", "Worked Dates", "Missed Dates", "Extra Shift Dates",
	}
	locationHeaders = []interface{}{
		"Location ID", "Location", "Total Hours", "Total Amount", "Shift Count",
	}
)

// ExportFilename names the workbook after the period and optional location.
func ExportFilename(result payroll.PayrollResult) string {
	if result.LocationID != nil {
		return fmt.Sprintf("payroll_%s_%s_%s.xlsx", result.PeriodStart, result.PeriodEnd, *result.LocationID)
	}
	return fmt.Sprintf("payroll_%s_%s.xlsx", result.PeriodStart, result.PeriodEnd)
}

// RenderWorkbook writes entries, employee summary and location summary to
// separate sheets of one XLSX file.
func RenderWorkbook(result payroll.PayrollResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetEntries); err != nil {
		return nil, err
	}
	for _, name := range []string{sheetSummary, sheetLocations} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	entryRows := make([][]interface{}, 0, len(result.Entries))
	for _, e := range result.Entries {
		entryRows = append(entryRows, []interface{}{
			e.ShiftDate, e.EmployeeID, e.EmployeeName, e.LocationName, e.Role,
			e.ScheduledHours, e.ActualHours, e.HourlyRate.InexactFloat64(), e.DailyAmount.InexactFloat64(),
			e.IsLate, e.LateMinutes, e.AutoClockedOut, e.RequiresCheckIn, e.IsMissed, e.AnomalyReason,
		})
	}

	summaryRows := make([][]interface{}, 0, len(result.Summary))
	for _, s := range result.Summary {
		expected := ""
		if s.ExpectedShifts != nil {
			expected = fmt.Sprint(*s.ExpectedShifts)
		}
		summaryRows = append(summaryRows, []interface{}{
			s.EmployeeID, s.EmployeeName, s.ScheduledHours, s.ActualHours, s.OvertimeHours, s.UndertimeHours,
			s.DaysWorked, s.LateCount, s.LateMinutes, expected, s.ExtraShifts, s.MissingShifts,
			s.OvertimePay.InexactFloat64(), s.TotalAmount.InexactFloat64(),
			strings.Join(s.WorkedDates, ", "), strings.Join(s.MissedDates, ", "), strings.Join(s.ExtraShiftDates, ", "),
		})
	}

	locationRows := make([][]interface{}, 0, len(result.LocationSummary))
	for _, l := range result.LocationSummary {
		locationRows = append(locationRows, []interface{}{
			l.LocationID, l.LocationName, l.TotalHours, l.TotalAmount.InexactFloat64(), l.ShiftCount,
		})
	}

	sheets := []struct {
		name    string
		headers []interface{}
		rows    [][]interface{}
	}{
		{sheetEntries, entryHeaders, entryRows},
		{sheetSummary, summaryHeaders, summaryRows},
		{sheetLocations, locationHeaders, locationRows},
	}
	for _, sheet := range sheets {
		if err := writeSheet(f, sheet.name, sheet.headers, sheet.rows, headerStyle); err != nil {
			return nil, fmt.Errorf("sheet %s: %w", sheet.name, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, headers []interface{}, rows [][]interface{}, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	lastHeader, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
