package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/YanguiHadil/unihelp/internal/log"
)

func TestEmailStoreAppendAndRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "emails.json")
	s := NewEmailStore(path, log.NewNop())

	s.Append("certificat", "Objet: Demande d'attestation")
	s.Append("stage", "Objet: Convention de stage")

	reloaded := NewEmailStore(path, log.NewNop())
	records := reloaded.List()
	if len(records) != 2 {
		t.Fatalf("reloaded %d records, want 2", len(records))
	}
	if records[0].Type != "certificat" || records[1].Content != "Objet: Convention de stage" {
		t.Errorf("round trip corrupted records: %+v", records)
	}
	if records[0].Timestamp.IsZero() {
		t.Error("persisted records must carry a timestamp")
	}
}

func TestEmailStoreDelete(t *testing.T) {
	t.Parallel()

	s := NewEmailStore(filepath.Join(t.TempDir(), "emails.json"), log.NewNop())
	s.Append("certificat", "un")
	s.Append("absence", "deux")

	s.Delete(0)
	if s.Len() != 1 {
		t.Fatalf("expected 1 record after delete, got %d", s.Len())
	}
	if s.List()[0].Type != "absence" {
		t.Error("wrong record deleted")
	}

	// Out-of-range indexes are ignored.
	s.Delete(-1)
	s.Delete(5)
	if s.Len() != 1 {
		t.Error("out-of-range delete must be a no-op")
	}
}

func TestEmailStoreClear(t *testing.T) {
	t.Parallel()

	s := NewEmailStore(filepath.Join(t.TempDir(), "emails.json"), log.NewNop())
	s.Append("certificat", "un")
	s.Clear()

	if s.Len() != 0 {
		t.Errorf("expected empty store, got %d records", s.Len())
	}
}

func TestEmailStoreCorruptFileStartsEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "emails.json")
	if err := os.WriteFile(path, []byte("[{"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := NewEmailStore(path, log.NewNop())
	if s.Len() != 0 {
		t.Error("corrupt file must load as empty store")
	}
}
