// Package session tracks per-user interaction sessions for rate
// limiting and analytics attribution.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout is how long a session may stay idle before it is
// considered expired and replaced.
const DefaultTimeout = 30 * time.Minute

// Session is an identified window of user activity.
type Session struct {
	ID        string
	CreatedAt time.Time
	LastSeen  time.Time
}

// Manager hands out sessions and expires idle ones.
type Manager struct {
	timeout time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager returns a Manager with the given idle timeout.
// A non-positive timeout falls back to DefaultTimeout.
func NewManager(timeout time.Duration) *Manager {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Manager{
		timeout:  timeout,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Get returns the live session for id, or a fresh one when id is
// empty, unknown or expired. Getting a session touches it.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if s, ok := m.sessions[id]; ok && now.Sub(s.LastSeen) < m.timeout {
		s.LastSeen = now
		return m.clone(s)
	}
	delete(m.sessions, id)

	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		LastSeen:  now,
	}
	m.sessions[s.ID] = s
	return m.clone(s)
}

// Expired reports whether id no longer maps to a live session.
func (m *Manager) Expired(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	return !ok || m.now().Sub(s.LastSeen) >= m.timeout
}

// Prune discards expired sessions and returns how many were removed.
func (m *Manager) Prune() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for id, s := range m.sessions {
		if now.Sub(s.LastSeen) >= m.timeout {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked sessions, live or not.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) clone(s *Session) *Session {
	c := *s
	return &c
}
