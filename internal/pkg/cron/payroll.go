package cron

import (
	"context"
	"time"
)

// PreviewCacheSweeper evicts expired payroll previews.
type PreviewCacheSweeper interface {
	Sweep(ctx context.Context) error
}

// PayrollJobs contains payroll-related cron jobs
type PayrollJobs struct {
	cache    PreviewCacheSweeper
	interval time.Duration
}

// NewPayrollJobs creates payroll cron jobs
func NewPayrollJobs(cache PreviewCacheSweeper, interval time.Duration) *PayrollJobs {
	return &PayrollJobs{
		cache:    cache,
		interval: interval,
	}
}

// RegisterJobs registers all payroll-related cron jobs. A non-positive
// interval registers nothing.
func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) {
	if j.interval <= 0 {
		return
	}

	scheduler.AddJob(
		"sweep_payroll_preview_cache",
		j.interval,
		j.cache.Sweep,
	)
}
