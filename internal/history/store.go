package history

import (
	"encoding/json"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/YanguiHadil/unihelp/internal/log"
)

// DefaultMaxItems caps the persisted turn log; the oldest turns are
// dropped past this point.
const DefaultMaxItems = 100

// conversationIDLayout formats conversation ids from wall time, e.g.
// "20240102_150405". Human-legible and sortable.
const conversationIDLayout = "20060102_150405"

// Store is the threaded conversation history. All turns ever recorded
// live in one ordered log; the "active" conversation is the subset
// sharing the current conversation id.
//
// Every mutation persists the full log before returning. Persistence
// failures are logged and surfaced nowhere else: the in-memory log is
// the source of truth for the running session.
//
// Store is safe for concurrent use.
type Store struct {
	path     string
	maxItems int
	logger   log.Logger
	now      func() time.Time

	mu       sync.Mutex
	turns    []Turn
	activeID string
}

// NewStore loads the turn log from path. A missing or corrupt file is
// treated as an empty log. A fresh conversation id is allocated for
// the new session.
func NewStore(path string, maxItems int, logger log.Logger) *Store {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	s := &Store{
		path:     path,
		maxItems: maxItems,
		logger:   logger,
		now:      time.Now,
	}
	s.turns = s.load()
	s.activeID = s.now().Format(conversationIDLayout)
	return s
}

// Append records a completed exchange in the active conversation and
// persists the log. The turn is kept in memory even when persistence
// fails.
func (s *Store) Append(question, answer string) Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	turn := Turn{
		Timestamp:      s.now(),
		ConversationID: s.activeID,
		Question:       question,
		Answer:         answer,
	}
	s.turns = append(s.turns, turn)
	if len(s.turns) > s.maxItems {
		s.turns = s.turns[len(s.turns)-s.maxItems:]
	}
	s.persist()
	return turn
}

// StartNewConversation allocates a fresh conversation id and returns
// it. Prior turns are untouched; they simply stop being part of the
// active view.
func (s *Store) StartNewConversation() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The id has second resolution; bump past the current one when two
	// conversations start within the same second.
	t := s.now()
	id := t.Format(conversationIDLayout)
	for id == s.activeID {
		t = t.Add(time.Second)
		id = t.Format(conversationIDLayout)
	}
	s.activeID = id
	return s.activeID
}

// DeleteConversation removes every turn with the given conversation id
// and persists the result.
func (s *Store) DeleteConversation(conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.turns[:0]
	for _, t := range s.turns {
		if t.ConversationID != conversationID {
			kept = append(kept, t)
		}
	}
	s.turns = kept
	s.persist()
}

// ClearAll removes every turn and persists the empty log.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns = nil
	s.persist()
}

// ActiveID returns the current conversation id.
func (s *Store) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// Len returns the total number of recorded turns.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}

// Turns returns a copy of the full log in append order.
func (s *Store) Turns() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Recent returns up to n most recent turns of the active conversation,
// oldest first, for use as model context.
func (s *Store) Recent(n int) []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	var active []Turn
	for _, t := range s.turns {
		if t.ConversationID == s.activeID {
			active = append(active, t)
		}
	}
	if len(active) > n {
		active = active[len(active)-n:]
	}
	return active
}

// Conversations groups all turns by conversation id, most recent
// conversation first; turns within a group keep append order.
func (s *Store) Conversations() []Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups := make(map[string][]Turn)
	for _, t := range s.turns {
		groups[t.ConversationID] = append(groups[t.ConversationID], t)
	}

	out := make([]Conversation, 0, len(groups))
	for id, turns := range groups {
		out = append(out, Conversation{ID: id, Turns: turns})
	}
	// Ids embed wall time, so descending id order is reverse
	// chronological.
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

// persist writes the full log. Caller holds the lock.
func (s *Store) persist() {
	data, err := json.MarshalIndent(s.turns, "", "  ")
	if err != nil {
		s.logger.Warn("could not encode chat history", "error", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		s.logger.Warn("could not save chat history", "path", s.path, "error", err)
	}
}

// load reads the turn log, treating a missing or corrupt file as
// empty. Startup must never fail on history state.
func (s *Store) load() []Turn {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("could not read chat history", "path", s.path, "error", err)
		}
		return nil
	}

	var turns []Turn
	if err := json.Unmarshal(data, &turns); err != nil {
		s.logger.Warn("chat history file is corrupt, starting empty", "path", s.path, "error", err)
		return nil
	}
	return turns
}
