package analytics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/YanguiHadil/unihelp/internal/log"
)

func TestRecordAndCount(t *testing.T) {
	t.Parallel()

	tr := NewTracker(filepath.Join(t.TempDir(), "analytics.json"), 100, log.NewNop())

	tr.Record(EventQuestionAsked, "s1", map[string]string{"lang": "fr"})
	tr.Record(EventQuestionAsked, "s2", nil)
	tr.Record(EventQuickReply, "s1", nil)

	if got := tr.Count(EventQuestionAsked); got != 2 {
		t.Errorf("Count(question_asked) = %d, want 2", got)
	}
	if got := tr.Count(""); got != 3 {
		t.Errorf("Count(all) = %d, want 3", got)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "analytics.json")
	tr := NewTracker(path, 100, log.NewNop())
	tr.Record(EventEmailGenerated, "s1", map[string]string{"type": "stage"})

	reloaded := NewTracker(path, 100, log.NewNop())
	events := reloaded.Events()
	if len(events) != 1 {
		t.Fatalf("reloaded %d events, want 1", len(events))
	}
	if events[0].Name != EventEmailGenerated || events[0].Fields["type"] != "stage" {
		t.Errorf("round trip corrupted event: %+v", events[0])
	}
	if events[0].Timestamp.IsZero() {
		t.Error("persisted events must carry a timestamp")
	}
}

func TestCapDropsOldest(t *testing.T) {
	t.Parallel()

	tr := NewTracker(filepath.Join(t.TempDir(), "analytics.json"), 3, log.NewNop())
	for _, name := range []string{"a", "b", "c", "d"} {
		tr.Record(name, "", nil)
	}

	events := tr.Events()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0].Name != "b" || events[2].Name != "d" {
		t.Errorf("oldest event should be dropped, got %+v", events)
	}
}

func TestCorruptFileStartsEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "analytics.json")
	if err := os.WriteFile(path, []byte("nope"), 0o600); err != nil {
		t.Fatal(err)
	}

	tr := NewTracker(path, 100, log.NewNop())
	if tr.Count("") != 0 {
		t.Error("corrupt file must load as empty log")
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	tr := NewTracker(filepath.Join(t.TempDir(), "analytics.json"), 100, log.NewNop())
	tr.Record(EventCacheHit, "", nil)
	tr.Clear()

	if tr.Count("") != 0 {
		t.Errorf("expected empty log after Clear, got %d events", tr.Count(""))
	}
}

func TestWriteFailureKeepsMemory(t *testing.T) {
	t.Parallel()

	tr := NewTracker(t.TempDir(), 100, log.NewNop())
	tr.Record(EventRateLimited, "", nil)

	if tr.Count("") != 1 {
		t.Error("persistence failure must not lose the in-memory event")
	}
}
