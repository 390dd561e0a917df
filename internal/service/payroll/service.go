package payroll

import (
	"context"
	"fmt"

	"github.com/dashspecter/auditbuddy-automations-sub005/internal/domain/payroll"
	"github.com/go-chi/jwtauth/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const tracerName = "github.com/dashspecter/auditbuddy-automations-sub005/internal/service/payroll"

type PayrollServiceImpl struct {
	scheduleSource   payroll.ScheduleSource
	attendanceSource payroll.AttendanceSource
	engine           *Engine
	cache            *PreviewCache
	tracer           trace.Tracer
}

func NewPayrollService(
	scheduleSource payroll.ScheduleSource,
	attendanceSource payroll.AttendanceSource,
	engine *Engine,
	cache *PreviewCache,
) payroll.PayrollService {
	if cache == nil {
		cache = NewPreviewCache(0)
	}
	return &PayrollServiceImpl{
		scheduleSource:   scheduleSource,
		attendanceSource: attendanceSource,
		engine:           engine,
		cache:            cache,
		tracer:           otel.Tracer(tracerName),
	}
}

// Helper to get company_id from JWT context
func getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", payroll.ErrCompanyRequired
	}

	return companyID, nil
}

// ========== PREVIEW ==========

func (s *PayrollServiceImpl) PreviewPayroll(ctx context.Context, req payroll.PreviewPayrollRequest) (payroll.PayrollResult, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResult{}, err
	}

	companyID, err := getCompanyIDFromContext(ctx)
	if err != nil {
		return payroll.PayrollResult{}, err
	}

	ctx, span := s.tracer.Start(ctx, "PayrollService.PreviewPayroll", trace.WithAttributes(
		attribute.String("payroll.company_id", companyID),
		attribute.String("payroll.start_date", req.StartDate),
		attribute.String("payroll.end_date", req.EndDate),
	))
	defer span.End()

	if cached, ok := s.cache.Get(companyID, req); ok {
		span.SetAttributes(attribute.Bool("payroll.cache_hit", true))
		return cached, nil
	}

	result, err := s.compute(ctx, companyID, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return payroll.PayrollResult{}, err
	}

	span.SetAttributes(
		attribute.Bool("payroll.cache_hit", false),
		attribute.Int("payroll.entries", len(result.Entries)),
		attribute.Int("payroll.employees", len(result.Summary)),
	)
	s.cache.Set(companyID, req, result)

	return result, nil
}

// compute fetches both sources concurrently and only builds entries once both
// have returned.
func (s *PayrollServiceImpl) compute(ctx context.Context, companyID string, req payroll.PreviewPayrollRequest) (payroll.PayrollResult, error) {
	start, end, err := req.Period()
	if err != nil {
		return payroll.PayrollResult{}, err
	}

	var (
		shifts []payroll.ShiftRecord
		logs   []payroll.AttendanceLog
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		shifts, err = s.scheduleSource.ListShifts(gctx, companyID, start, end, req.LocationID)
		if err != nil {
			return fmt.Errorf("failed to list shifts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		logs, err = s.attendanceSource.ListAttendanceLogs(gctx, companyID, start, end)
		if err != nil {
			return fmt.Errorf("failed to list attendance logs: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return payroll.PayrollResult{}, err
	}

	return s.engine.Compute(shifts, logs, start, end, req.LocationID)
}

// ========== EXPORT ==========

func (s *PayrollServiceImpl) ExportPayroll(ctx context.Context, req payroll.PreviewPayrollRequest) ([]byte, string, error) {
	result, err := s.PreviewPayroll(ctx, req)
	if err != nil {
		return nil, "", err
	}

	_, span := s.tracer.Start(ctx, "PayrollService.ExportPayroll")
	defer span.End()

	content, err := RenderWorkbook(result)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, "", fmt.Errorf("failed to render payroll workbook: %w", err)
	}

	return content, ExportFilename(result), nil
}
