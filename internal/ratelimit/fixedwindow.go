// Package ratelimit implements a fixed-window request limiter: each key gets
// a fresh allowance when its window expires, with no carry-over between
// windows.
package ratelimit

import (
	"sync"
	"time"
)

type window struct {
	start time.Time
	count int
}

// Limiter counts requests per key in fixed windows. Safe for concurrent use.
type Limiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	windows map[string]*window
}

func New(limit int, windowLength time.Duration) *Limiter {
	return &Limiter{
		limit:   limit,
		window:  windowLength,
		now:     time.Now,
		windows: map[string]*window{},
	}
}

// Allow reports whether the request identified by key fits into the key's
// current window and counts it if so. The first request after a window
// expires starts a new one.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.window {
		l.windows[key] = &window{start: now, count: 1}
		return true
	}
	if w.count >= l.limit {
		return false
	}
	w.count++
	return true
}

// Prune drops expired windows. Call periodically to bound memory on servers
// that see many distinct keys.
func (l *Limiter) Prune() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, w := range l.windows {
		if now.Sub(w.start) >= l.window {
			delete(l.windows, key)
		}
	}
}
