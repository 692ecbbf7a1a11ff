package service

import (
	"context"
	"sync"
	"time"

	"github.com/nutridiary/backend/internal/model"
)

// DefaultSearchDelay is how long a query sits before it actually runs.
const DefaultSearchDelay = 300 * time.Millisecond

// DebouncedSearch coalesces rapid catalog queries: each new query supersedes
// the pending one and restarts the delay timer. There is at most one search
// in flight; results for superseded queries are never delivered.
type DebouncedSearch struct {
	catalog *CatalogService
	delay   time.Duration

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// NewDebouncedSearch wraps catalog with a debounce of delay. A zero delay
// uses DefaultSearchDelay.
func NewDebouncedSearch(catalog *CatalogService, delay time.Duration) *DebouncedSearch {
	if delay <= 0 {
		delay = DefaultSearchDelay
	}
	return &DebouncedSearch{catalog: catalog, delay: delay}
}

// Query schedules a search for query and delivers its outcome to deliver
// once the debounce delay elapses without a newer query.
func (d *DebouncedSearch) Query(ctx context.Context, query string, deliver func([]model.FoodProfile, error)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(d.delay, func() {
		foods, err := d.catalog.Search(ctx, query)
		d.mu.Lock()
		current := d.seq == seq
		d.mu.Unlock()
		if current {
			deliver(foods, err)
		}
	})
}

// Cancel drops any pending query without delivering it.
func (d *DebouncedSearch) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
}
