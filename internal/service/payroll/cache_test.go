package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/dashspecter/auditbuddy-automations-sub005/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewCache_GetSet(t *testing.T) {
	cache := NewPreviewCache(time.Minute)
	now := mustInstant("2024-01-01T12:00:00Z")
	cache.now = func() time.Time { return now }

	req := payroll.PreviewPayrollRequest{StartDate: "2024-01-01", EndDate: "2024-01-07"}
	result := payroll.PayrollResult{PeriodStart: "2024-01-01", PeriodEnd: "2024-01-07", WeeksInPeriod: 1}

	_, ok := cache.Get("company-1", req)
	assert.False(t, ok)

	cache.Set("company-1", req, result)

	got, ok := cache.Get("company-1", req)
	require.True(t, ok)
	assert.Equal(t, result, got)

	// Keys are scoped by company and location.
	_, ok = cache.Get("company-2", req)
	assert.False(t, ok)
	withLocation := req
	withLocation.LocationID = strPtr(testLocationA)
	_, ok = cache.Get("company-1", withLocation)
	assert.False(t, ok)

	now = now.Add(time.Minute)
	_, ok = cache.Get("company-1", req)
	assert.False(t, ok)
}

func TestPreviewCache_Disabled(t *testing.T) {
	cache := NewPreviewCache(0)
	req := payroll.PreviewPayrollRequest{StartDate: "2024-01-01", EndDate: "2024-01-07"}

	cache.Set("company-1", req, payroll.PayrollResult{WeeksInPeriod: 1})

	_, ok := cache.Get("company-1", req)
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestPreviewCache_Sweep(t *testing.T) {
	cache := NewPreviewCache(time.Minute)
	now := mustInstant("2024-01-01T12:00:00Z")
	cache.now = func() time.Time { return now }

	first := payroll.PreviewPayrollRequest{StartDate: "2024-01-01", EndDate: "2024-01-07"}
	second := payroll.PreviewPayrollRequest{StartDate: "2024-01-08", EndDate: "2024-01-14"}

	cache.Set("company-1", first, payroll.PayrollResult{})
	now = now.Add(30 * time.Second)
	cache.Set("company-1", second, payroll.PayrollResult{})
	now = now.Add(45 * time.Second)

	require.NoError(t, cache.Sweep(context.Background()))

	assert.Equal(t, 1, cache.Len())
	_, ok := cache.Get("company-1", second)
	assert.True(t, ok)
}
