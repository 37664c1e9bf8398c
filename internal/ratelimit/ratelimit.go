// Package ratelimit gates user requests with a per-session sliding
// window. Denial is an ordinary outcome for the caller to present as
// "please wait", never an error.
package ratelimit

import (
	"sync"
	"time"
)

// Defaults match the application configuration: at most 10 requests in
// any trailing 60 second window.
const (
	DefaultLimit  = 10
	DefaultWindow = 60 * time.Second
)

// Limiter tracks request timestamps per session id. Entries older than
// the window are pruned lazily on each call; there is no background
// sweep.
//
// Limiter is safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	windows map[string][]time.Time
	now     func() time.Time
}

// New creates a Limiter allowing limit requests per window. Values
// at or below zero fall back to the defaults.
func New(limit int, window time.Duration) *Limiter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Limiter{
		limit:   limit,
		window:  window,
		windows: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Allow reports whether the session may make a request now. An allowed
// call is recorded against the window; a denied call is not.
func (l *Limiter) Allow(sessionID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	kept := l.windows[sessionID][:0]
	for _, ts := range l.windows[sessionID] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= l.limit {
		l.windows[sessionID] = kept
		return false
	}

	l.windows[sessionID] = append(kept, now)
	return true
}

// Remaining returns how many requests the session has left in the
// current window, without recording anything.
func (l *Limiter) Remaining(sessionID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.window)
	active := 0
	for _, ts := range l.windows[sessionID] {
		if ts.After(cutoff) {
			active++
		}
	}
	if active >= l.limit {
		return 0
	}
	return l.limit - active
}
