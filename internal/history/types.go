// Package history persists the question/answer log and the generated
// email log as whole-file JSON sequences.
//
// Turns are immutable once created and append-only, except for
// explicit bulk or per-conversation deletion. Ending a conversation
// never deletes prior turns; it only changes which turns the active
// view shows.
package history

import (
	"encoding/json"
	"strings"
	"time"
)

// timestampFormats are accepted on load, newest first. Files written
// by earlier revisions of the application carry bare ISO timestamps
// without a zone.
var timestampFormats = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// Turn is one question/answer exchange.
type Turn struct {
	Timestamp      time.Time
	ConversationID string
	Question       string
	Answer         string
}

// turnJSON is the wire form, matching the on-disk schema of the
// history files.
type turnJSON struct {
	Timestamp      string `json:"timestamp"`
	ConversationID string `json:"conversation_id,omitempty"`
	Question       string `json:"question"`
	Answer         string `json:"answer"`
}

// MarshalJSON writes the timestamp as RFC 3339.
func (t Turn) MarshalJSON() ([]byte, error) {
	return json.Marshal(turnJSON{
		Timestamp:      t.Timestamp.Format(time.RFC3339Nano),
		ConversationID: t.ConversationID,
		Question:       t.Question,
		Answer:         t.Answer,
	})
}

// UnmarshalJSON reads a turn, tolerating records written before
// conversation grouping existed: a missing conversation id is
// synthesized deterministically from the timestamp string.
func (t *Turn) UnmarshalJSON(data []byte) error {
	var raw turnJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	t.Timestamp = parseTimestamp(raw.Timestamp)
	t.Question = raw.Question
	t.Answer = raw.Answer
	t.ConversationID = raw.ConversationID
	if t.ConversationID == "" {
		t.ConversationID = legacyConversationID(raw.Timestamp)
	}
	return nil
}

// parseTimestamp tries the known formats; an unparseable value yields
// the zero time rather than failing the whole load.
func parseTimestamp(raw string) time.Time {
	for _, layout := range timestampFormats {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// legacyConversationID derives a conversation id from a raw timestamp
// string: its first 16 characters with date and time punctuation
// stripped. Stable for any given record, so legacy files group the
// same way on every load.
func legacyConversationID(rawTimestamp string) string {
	s := rawTimestamp
	if len(s) > 16 {
		s = s[:16]
	}
	s = strings.NewReplacer(":", "", "-", "").Replace(s)
	if s == "" {
		return "unknown"
	}
	return s
}

// Conversation is a derived grouping of turns sharing an id. Turns
// keep their original append order.
type Conversation struct {
	ID    string
	Turns []Turn
}
