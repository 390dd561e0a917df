package payroll

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dashspecter/auditbuddy-automations-sub005/internal/domain/payroll"
	"github.com/dashspecter/auditbuddy-automations-sub005/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScheduleSource struct {
	mu         sync.Mutex
	shifts     []payroll.ShiftRecord
	err        error
	calls      int
	companyID  string
	locationID *string
}

func (f *fakeScheduleSource) ListShifts(ctx context.Context, companyID string, start, end time.Time, locationID *string) ([]payroll.ShiftRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.companyID = companyID
	f.locationID = locationID
	return f.shifts, f.err
}

type fakeAttendanceSource struct {
	mu    sync.Mutex
	logs  []payroll.AttendanceLog
	err   error
	calls int
	start time.Time
	end   time.Time
}

func (f *fakeAttendanceSource) ListAttendanceLogs(ctx context.Context, companyID string, start, end time.Time) ([]payroll.AttendanceLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.start = start
	f.end = end
	return f.logs, f.err
}

func contextWithCompany(t *testing.T, companyID string) context.Context {
	t.Helper()
	builder := jwt.NewBuilder().Subject("user-1")
	if companyID != "" {
		builder = builder.Claim("company_id", companyID)
	}
	token, err := builder.Build()
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(cacheTTL time.Duration) (payroll.PayrollService, *fakeScheduleSource, *fakeAttendanceSource) {
	shifts, logs := engineFixture()
	schedule := &fakeScheduleSource{shifts: shifts}
	attendance := &fakeAttendanceSource{logs: logs}
	svc := NewPayrollService(schedule, attendance, NewEngine(nil, discardLogger()), NewPreviewCache(cacheTTL))
	return svc, schedule, attendance
}

// Test preview fetches both sources and computes the result
func TestPayrollService_PreviewPayroll_Success(t *testing.T) {
	svc, schedule, attendance := newTestService(0)
	ctx := contextWithCompany(t, "company-1")

	result, err := svc.PreviewPayroll(ctx, payroll.PreviewPayrollRequest{StartDate: "2024-01-01", EndDate: "2024-01-07"})

	require.NoError(t, err)
	assert.Len(t, result.Entries, 4)
	assert.Len(t, result.Summary, 2)
	assert.Equal(t, "company-1", schedule.companyID)
	assert.Equal(t, "2024-01-01", DateKey(attendance.start))
	assert.Equal(t, "2024-01-07", DateKey(attendance.end))
}

// Test the location filter is passed to the schedule source
func TestPayrollService_PreviewPayroll_LocationFilter(t *testing.T) {
	svc, schedule, _ := newTestService(0)
	ctx := contextWithCompany(t, "company-1")
	location := testLocationB

	result, err := svc.PreviewPayroll(ctx, payroll.PreviewPayrollRequest{StartDate: "2024-01-01", EndDate: "2024-01-07", LocationID: &location})

	require.NoError(t, err)
	require.NotNil(t, schedule.locationID)
	assert.Equal(t, testLocationB, *schedule.locationID)
	assert.Len(t, result.Entries, 1)
}

// Test invalid requests never reach the sources
func TestPayrollService_PreviewPayroll_ValidationError(t *testing.T) {
	svc, schedule, attendance := newTestService(0)
	ctx := contextWithCompany(t, "company-1")

	_, err := svc.PreviewPayroll(ctx, payroll.PreviewPayrollRequest{StartDate: "2024-01-07", EndDate: "2024-01-01"})

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	assert.Equal(t, "end_date", validationErrs[0].Field)
	assert.Equal(t, 0, schedule.calls)
	assert.Equal(t, 0, attendance.calls)
}

// Test a token without company is rejected
func TestPayrollService_PreviewPayroll_CompanyRequired(t *testing.T) {
	svc, _, _ := newTestService(0)

	_, err := svc.PreviewPayroll(contextWithCompany(t, ""), payroll.PreviewPayrollRequest{StartDate: "2024-01-01", EndDate: "2024-01-07"})
	assert.ErrorIs(t, err, payroll.ErrCompanyRequired)

	_, err = svc.PreviewPayroll(context.Background(), payroll.PreviewPayrollRequest{StartDate: "2024-01-01", EndDate: "2024-01-07"})
	assert.ErrorIs(t, err, payroll.ErrCompanyRequired)
}

// Test a failing source fails the preview
func TestPayrollService_PreviewPayroll_SourceError(t *testing.T) {
	svc, _, attendance := newTestService(0)
	attendance.err = errors.New("connection refused")
	ctx := contextWithCompany(t, "company-1")

	_, err := svc.PreviewPayroll(ctx, payroll.PreviewPayrollRequest{StartDate: "2024-01-01", EndDate: "2024-01-07"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list attendance logs")
}

// Test repeated previews are served from cache
func TestPayrollService_PreviewPayroll_Cached(t *testing.T) {
	svc, schedule, _ := newTestService(time.Minute)
	ctx := contextWithCompany(t, "company-1")
	req := payroll.PreviewPayrollRequest{StartDate: "2024-01-01", EndDate: "2024-01-07"}

	first, err := svc.PreviewPayroll(ctx, req)
	require.NoError(t, err)
	second, err := svc.PreviewPayroll(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, schedule.calls)

	_, err = svc.PreviewPayroll(contextWithCompany(t, "company-2"), req)
	require.NoError(t, err)
	assert.Equal(t, 2, schedule.calls)
}

// Test export renders a workbook named after the period
func TestPayrollService_ExportPayroll(t *testing.T) {
	svc, _, _ := newTestService(0)
	ctx := contextWithCompany(t, "company-1")

	content, filename, err := svc.ExportPayroll(ctx, payroll.PreviewPayrollRequest{StartDate: "2024-01-01", EndDate: "2024-01-07"})

	require.NoError(t, err)
	assert.NotEmpty(t, content)
	assert.Equal(t, "payroll_2024-01-01_2024-01-07.xlsx", filename)
}
