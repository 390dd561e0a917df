package http

import (
	"net/http"
	"strings"

	"github.com/dashspecter/auditbuddy-automations-sub005/internal/domain/payroll"
	"github.com/dashspecter/auditbuddy-automations-sub005/internal/handler/http/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PayrollHandler interface {
	PreviewPayroll(w http.ResponseWriter, r *http.Request)
	ExportPayroll(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func previewRequestFromQuery(r *http.Request) payroll.PreviewPayrollRequest {
	query := r.URL.Query()
	req := payroll.PreviewPayrollRequest{
		StartDate: strings.TrimSpace(query.Get("start_date")),
		EndDate:   strings.TrimSpace(query.Get("end_date")),
	}
	if locationID := strings.TrimSpace(query.Get("location_id")); locationID != "" {
		req.LocationID = &locationID
	}
	return req
}

// ========== PREVIEW ==========

func (h *payrollHandlerImpl) PreviewPayroll(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.PreviewPayroll(r.Context(), previewRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== EXPORT ==========

func (h *payrollHandlerImpl) ExportPayroll(w http.ResponseWriter, r *http.Request) {
	content, filename, err := h.payrollService.ExportPayroll(r.Context(), previewRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, xlsxContentType, filename, content)
}
