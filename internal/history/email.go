package history

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/YanguiHadil/unihelp/internal/log"
)

// Record is one generated administrative email.
type Record struct {
	Timestamp time.Time
	Type      string
	Content   string
}

type recordJSON struct {
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
	Content   string `json:"content"`
}

func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		Timestamp: r.Timestamp.Format(time.RFC3339Nano),
		Type:      r.Type,
		Content:   r.Content,
	})
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var raw recordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Timestamp = parseTimestamp(raw.Timestamp)
	r.Type = raw.Type
	r.Content = raw.Content
	return nil
}

// EmailStore persists generated emails, independently of the chat log.
// Same durability rules as Store: whole-file JSON, tolerant load,
// best-effort save.
type EmailStore struct {
	path   string
	logger log.Logger
	now    func() time.Time

	mu      sync.Mutex
	records []Record
}

// NewEmailStore loads the email log from path; missing or corrupt
// files start empty.
func NewEmailStore(path string, logger log.Logger) *EmailStore {
	s := &EmailStore{
		path:   path,
		logger: logger,
		now:    time.Now,
	}
	s.records = s.load()
	return s
}

// Append records a generated email and persists the log.
func (s *EmailStore) Append(emailType, content string) Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := Record{Timestamp: s.now(), Type: emailType, Content: content}
	s.records = append(s.records, rec)
	s.persist()
	return rec
}

// Delete removes the record at index; out-of-range indexes are a
// no-op.
func (s *EmailStore) Delete(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.records) {
		return
	}
	s.records = append(s.records[:index], s.records[index+1:]...)
	s.persist()
}

// Clear removes every record.
func (s *EmailStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	s.persist()
}

// List returns a copy of the records in append order.
func (s *EmailStore) List() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *EmailStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func (s *EmailStore) persist() {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		s.logger.Warn("could not encode email history", "error", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		s.logger.Warn("could not save email history", "path", s.path, "error", err)
	}
}

func (s *EmailStore) load() []Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("could not read email history", "path", s.path, "error", err)
		}
		return nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("email history file is corrupt, starting empty", "path", s.path, "error", err)
		return nil
	}
	return records
}
