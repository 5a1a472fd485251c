package ratelimit

import (
	"sync"
	"time"
)

// sweepThreshold is the key count above which idle keys are purged on a hit.
const sweepThreshold = 4096

type memoryWindow struct {
	mu   sync.Mutex
	hits map[string][]time.Time
}

func newMemoryWindow() *memoryWindow {
	return &memoryWindow{hits: make(map[string][]time.Time)}
}

func (m *memoryWindow) hit(key string, now time.Time, window time.Duration) (int64, time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := now.Add(-window)
	if len(m.hits) > sweepThreshold {
		for k, ts := range m.hits {
			if len(ts) == 0 || !ts[len(ts)-1].After(cutoff) {
				delete(m.hits, k)
			}
		}
	}

	ts := prune(m.hits[key], cutoff)
	ts = append(ts, now)
	m.hits[key] = ts
	return int64(len(ts)), ts[0]
}

// prune drops timestamps at or before cutoff. ts is sorted ascending.
func prune(ts []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(ts) && !ts[i].After(cutoff) {
		i++
	}
	return ts[i:]
}
