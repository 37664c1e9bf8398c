// Package analytics records usage events to a local JSON file.
// Recording is best effort: a broken analytics file never blocks the
// assistant, at worst events are dropped with a warning.
package analytics

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/YanguiHadil/unihelp/internal/log"
)

// DefaultMaxEvents caps the event log, oldest events are dropped first.
const DefaultMaxEvents = 1000

// Well-known event names.
const (
	EventQuestionAsked  = "question_asked"
	EventQuickReply     = "quick_reply"
	EventEmailGenerated = "email_generated"
	EventCacheHit       = "cache_hit"
	EventRateLimited    = "rate_limited"
	EventModelFailure   = "model_failure"
)

// Event is a single recorded usage fact.
type Event struct {
	Timestamp time.Time         `json:"timestamp"`
	Name      string            `json:"event"`
	SessionID string            `json:"session_id,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
}

// Tracker appends events to an in-memory log mirrored to disk.
type Tracker struct {
	path      string
	maxEvents int
	logger    log.Logger
	now       func() time.Time

	mu     sync.Mutex
	events []Event
}

// NewTracker loads any existing event log from path. A missing or
// corrupt file yields an empty tracker.
func NewTracker(path string, maxEvents int, logger log.Logger) *Tracker {
	if maxEvents <= 0 {
		maxEvents = DefaultMaxEvents
	}
	t := &Tracker{
		path:      path,
		maxEvents: maxEvents,
		logger:    logger,
		now:       time.Now,
	}
	t.events = t.load()
	return t
}

// Record appends a named event with optional fields.
func (t *Tracker) Record(name, sessionID string, fields map[string]string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.events = append(t.events, Event{
		Timestamp: t.now(),
		Name:      name,
		SessionID: sessionID,
		Fields:    fields,
	})
	if len(t.events) > t.maxEvents {
		t.events = t.events[len(t.events)-t.maxEvents:]
	}
	t.persist()
}

// Count returns how many events with the given name are in the log.
// An empty name counts everything.
func (t *Tracker) Count(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if name == "" {
		return len(t.events)
	}
	n := 0
	for _, ev := range t.events {
		if ev.Name == name {
			n++
		}
	}
	return n
}

// Events returns a copy of the event log in append order.
func (t *Tracker) Events() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

// Clear drops all events and rewrites the file.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.events = nil
	t.persist()
}

func (t *Tracker) persist() {
	data, err := json.MarshalIndent(t.events, "", "  ")
	if err != nil {
		t.logger.Warn("marshal analytics", "error", err)
		return
	}
	if err := os.WriteFile(t.path, data, 0o600); err != nil {
		t.logger.Warn("write analytics", "path", t.path, "error", err)
	}
}

func (t *Tracker) load() []Event {
	data, err := os.ReadFile(t.path)
	if err != nil {
		if !os.IsNotExist(err) {
			t.logger.Warn("read analytics", "path", t.path, "error", err)
		}
		return nil
	}
	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		t.logger.Warn("corrupt analytics file, starting empty", "path", t.path, "error", err)
		return nil
	}
	if len(events) > t.maxEvents {
		events = events[len(events)-t.maxEvents:]
	}
	return events
}
