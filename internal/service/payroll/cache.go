package payroll

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dashspecter/auditbuddy-automations-sub005/internal/domain/payroll"
)

type previewKey struct {
	companyID  string
	startDate  string
	endDate    string
	locationID string
}

func newPreviewKey(companyID string, req payroll.PreviewPayrollRequest) previewKey {
	key := previewKey{companyID: companyID, startDate: req.StartDate, endDate: req.EndDate}
	if req.LocationID != nil {
		key.locationID = *req.LocationID
	}
	return key
}

type cachedPreview struct {
	result    payroll.PayrollResult
	expiresAt time.Time
}

// PreviewCache keeps computed results for a short time. Results are shared
// between callers and must be treated as read-only. A zero TTL disables it.
type PreviewCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[previewKey]cachedPreview
	now     func() time.Time
}

func NewPreviewCache(ttl time.Duration) *PreviewCache {
	return &PreviewCache{
		ttl:     ttl,
		entries: make(map[previewKey]cachedPreview),
		now:     time.Now,
	}
}

func (c *PreviewCache) Get(companyID string, req payroll.PreviewPayrollRequest) (payroll.PayrollResult, bool) {
	if c.ttl <= 0 {
		return payroll.PayrollResult{}, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	cached, ok := c.entries[newPreviewKey(companyID, req)]
	if !ok || !c.now().Before(cached.expiresAt) {
		return payroll.PayrollResult{}, false
	}
	return cached.result, true
}

func (c *PreviewCache) Set(companyID string, req payroll.PreviewPayrollRequest, result payroll.PayrollResult) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[newPreviewKey(companyID, req)] = cachedPreview{
		result:    result,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Sweep evicts expired results. Signature matches cron job functions.
func (c *PreviewCache) Sweep(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	evicted := 0
	for key, cached := range c.entries {
		if !now.Before(cached.expiresAt) {
			delete(c.entries, key)
			evicted++
		}
	}

	if evicted > 0 {
		slog.Debug("Payroll preview cache swept", "evicted", evicted, "remaining", len(c.entries))
	}
	return nil
}

func (c *PreviewCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
