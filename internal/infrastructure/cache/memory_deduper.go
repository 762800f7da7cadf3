package cache

import (
	"context"
	"sync"
	"time"

	"fieldserve/internal/usecase/interfaces"
)

// MemoryDeduper is a process-local IDeduper for tests and single-instance
// deployments without Redis. The clock is injectable so window expiry can be
// exercised without sleeping.

type MemoryDeduper struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

var _ interfaces.IDeduper = (*MemoryDeduper)(nil)

func NewMemoryDeduper() *MemoryDeduper {
	return &MemoryDeduper{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// NewMemoryDeduperWithClock builds a deduper on a caller-controlled clock.
func NewMemoryDeduperWithClock(now func() time.Time) *MemoryDeduper {
	d := NewMemoryDeduper()
	d.now = now
	return d
}

func (d *MemoryDeduper) AcquireOnce(_ context.Context, key string, ttl time.Duration) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if expiry, ok := d.entries[key]; ok && now.Before(expiry) {
		return false, nil
	}
	d.entries[key] = now.Add(ttl)

	// Opportunistic sweep keeps the map from growing unbounded.
	for k, expiry := range d.entries {
		if !now.Before(expiry) {
			delete(d.entries, k)
		}
	}
	return true, nil
}
