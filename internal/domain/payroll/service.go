package payroll

import "context"

// PayrollService defines business logic for payroll reconciliation
type PayrollService interface {
	// PreviewPayroll reconciles schedule against attendance for the requested period
	PreviewPayroll(ctx context.Context, req PreviewPayrollRequest) (PayrollResult, error)

	// ExportPayroll renders the same result as an XLSX workbook
	ExportPayroll(ctx context.Context, req PreviewPayrollRequest) (content []byte, filename string, err error)
}
