package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryCounter is an in-process fixed-window counter. It serves local
// development when no REDIS_URL is configured, and doubles as the test
// counter. Counts are per-process, so it does not coordinate replicas.
type MemoryCounter struct {
	mu      sync.Mutex
	windows map[string]*window

	// now is swappable in tests.
	now func() time.Time
}

type window struct {
	count   int64
	resetAt time.Time
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

func (m *MemoryCounter) Incr(ctx context.Context, key string, dur time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	w, ok := m.windows[key]
	if !ok || now.After(w.resetAt) {
		w = &window{resetAt: now.Add(dur)}
		m.windows[key] = w
	}
	w.count++
	return w.count, nil
}

var _ Counter = (*MemoryCounter)(nil)
