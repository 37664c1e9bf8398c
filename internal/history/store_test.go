package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/YanguiHadil/unihelp/internal/log"
)

func newTestStore(t *testing.T) (*Store, *time.Time) {
	t.Helper()
	s := NewStore(filepath.Join(t.TempDir(), "chat.json"), 100, log.NewNop())
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	s.activeID = now.Format(conversationIDLayout)
	return s, &now
}

func TestAppendAndRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "chat.json")
	s := NewStore(path, 100, log.NewNop())

	s.Append("question une", "réponse une")
	s.Append("question deux", "réponse deux")

	// Reload from disk into a fresh store.
	reloaded := NewStore(path, 100, log.NewNop())
	if reloaded.Len() != 2 {
		t.Fatalf("reloaded %d turns, want 2", reloaded.Len())
	}

	turns := reloaded.Turns()
	if turns[0].Question != "question une" || turns[1].Answer != "réponse deux" {
		t.Errorf("round trip corrupted turns: %+v", turns)
	}
	if turns[0].ConversationID == "" {
		t.Error("persisted turns must carry a conversation id")
	}
}

func TestStartNewConversationKeepsHistory(t *testing.T) {
	t.Parallel()

	s, now := newTestStore(t)

	s.Append("q1", "a1")
	oldID := s.ActiveID()

	*now = now.Add(time.Minute)
	newID := s.StartNewConversation()

	if newID == oldID {
		t.Fatal("new conversation must get a fresh id")
	}
	if s.Len() != 1 {
		t.Error("starting a new conversation must not delete turns")
	}
	if got := s.Recent(6); len(got) != 0 {
		t.Errorf("active view should be empty after new conversation, got %d turns", len(got))
	}
}

func TestDeleteConversationIsSelective(t *testing.T) {
	t.Parallel()

	s, now := newTestStore(t)

	s.Append("old q", "old a")
	oldID := s.ActiveID()

	*now = now.Add(time.Minute)
	s.StartNewConversation()
	s.Append("new q", "new a")

	s.DeleteConversation(oldID)

	if s.Len() != 1 {
		t.Fatalf("expected 1 surviving turn, got %d", s.Len())
	}
	if s.Turns()[0].Question != "new q" {
		t.Error("wrong turn deleted")
	}
}

func TestClearAll(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	s.Append("q", "a")
	s.ClearAll()

	if s.Len() != 0 {
		t.Errorf("expected empty log, got %d turns", s.Len())
	}
}

func TestLegacyRecordsGetSynthesizedIDs(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "chat.json")
	legacy := `[
	  {"timestamp": "2023-11-05T09:30:12.123456", "question": "q", "answer": "a"}
	]`
	if err := os.WriteFile(path, []byte(legacy), 0o600); err != nil {
		t.Fatal(err)
	}

	s := NewStore(path, 100, log.NewNop())
	turns := s.Turns()
	if len(turns) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(turns))
	}

	// First 16 chars of "2023-11-05T09:30:12..." minus '-' and ':'.
	if got, want := turns[0].ConversationID, "20231105T0930"; got != want {
		t.Errorf("synthesized id = %q, want %q", got, want)
	}

	// Determinism: loading again yields the same id.
	again := NewStore(path, 100, log.NewNop())
	if again.Turns()[0].ConversationID != turns[0].ConversationID {
		t.Error("legacy id synthesis must be deterministic")
	}
}

func TestCorruptFileStartsEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "chat.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := NewStore(path, 100, log.NewNop())
	if s.Len() != 0 {
		t.Error("corrupt file must load as empty history")
	}
}

func TestConversationGrouping(t *testing.T) {
	t.Parallel()

	s, now := newTestStore(t)

	s.Append("c1 q1", "a")
	s.Append("c1 q2", "a")
	firstID := s.ActiveID()

	*now = now.Add(time.Hour)
	s.StartNewConversation()
	s.Append("c2 q1", "a")

	convs := s.Conversations()
	if len(convs) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(convs))
	}
	if convs[0].ID == firstID {
		t.Error("most recent conversation must come first")
	}
	if len(convs[1].Turns) != 2 {
		t.Errorf("older conversation should hold 2 turns, got %d", len(convs[1].Turns))
	}
	if convs[1].Turns[0].Question != "c1 q1" {
		t.Error("turns within a conversation must keep append order")
	}
}

func TestRecentLimitsToActiveConversation(t *testing.T) {
	t.Parallel()

	s, now := newTestStore(t)

	s.Append("old", "a")
	*now = now.Add(time.Minute)
	s.StartNewConversation()
	for i := 0; i < 5; i++ {
		s.Append("q", "a")
	}

	recent := s.Recent(3)
	if len(recent) != 3 {
		t.Fatalf("Recent(3) returned %d turns", len(recent))
	}
	for _, turn := range recent {
		if turn.Question == "old" {
			t.Error("Recent must not include turns from other conversations")
		}
	}
}

func TestMaxItemsCapsLog(t *testing.T) {
	t.Parallel()

	s := NewStore(filepath.Join(t.TempDir(), "chat.json"), 3, log.NewNop())
	for i := 0; i < 5; i++ {
		s.Append("q", "a")
	}
	if s.Len() != 3 {
		t.Errorf("log should be capped at 3, got %d", s.Len())
	}
}

func TestPersistFailureKeepsMemory(t *testing.T) {
	t.Parallel()

	// A directory as target path makes every write fail.
	s := NewStore(t.TempDir(), 100, log.NewNop())
	s.Append("q", "a")

	if s.Len() != 1 {
		t.Error("persistence failure must not lose the in-memory turn")
	}
}

func TestTurnJSONShape(t *testing.T) {
	t.Parallel()

	turn := Turn{
		Timestamp:      time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		ConversationID: "20240601_100000",
		Question:       "q",
		Answer:         "a",
	}
	data, err := json.Marshal(turn)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"timestamp", "conversation_id", "question", "answer"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("serialized turn missing %q key", key)
		}
	}
}
