package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleDoc = `Université de Tunis - Guide Officiel

SECTION 1: Inscription
Les inscriptions ouvrent le 1er septembre.
Documents obligatoires: CIN, photos, reçu de paiement.

SECTION 2: Certificats
Les certificats de scolarité sont délivrés sous 48h.

SECTION 4: Stages
Internship rules require a signed convention.
Le rapport de stage est à rendre avant la soutenance.
`

func TestParseSections(t *testing.T) {
	t.Parallel()

	c := New(sampleDoc)

	if len(c.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(c.Sections))
	}

	wantLabels := []string{"SECTION 1", "SECTION 2", "SECTION 4"}
	for i, want := range wantLabels {
		if c.Sections[i].Label != want {
			t.Errorf("section %d label = %q, want %q", i, c.Sections[i].Label, want)
		}
	}

	sec, ok := c.Section("SECTION 4")
	if !ok {
		t.Fatal("SECTION 4 not found")
	}
	if want := "SECTION 4: Stages"; sec.Content[:len(want)] != want {
		t.Errorf("section content should start with its header, got %q", sec.Content)
	}
}

func TestParsePreambleIsUnowned(t *testing.T) {
	t.Parallel()

	c := New(sampleDoc)
	for _, s := range c.Sections {
		if s.Label == "Université" {
			t.Error("preamble text must not become a section")
		}
	}
}

func TestHeaderLabelWithoutColon(t *testing.T) {
	t.Parallel()

	c := New("SECTION 7\nFrais et paiement.\n")
	if len(c.Sections) != 1 || c.Sections[0].Label != "SECTION 7" {
		t.Fatalf("unexpected sections: %+v", c.Sections)
	}
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	if !New("").Empty() {
		t.Error("blank corpus should be empty")
	}
	if !New("  \n\t").Empty() {
		t.Error("whitespace corpus should be empty")
	}
	if New(sampleDoc).Empty() {
		t.Error("sample corpus should not be empty")
	}

	var nilCorpus *Corpus
	if !nilCorpus.Empty() {
		t.Error("nil corpus should be empty")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	c, err := Load(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if !c.Empty() {
		t.Error("missing file should yield an empty corpus")
	}
}

func TestLoadExistingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "documents.txt")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Sections) != 3 {
		t.Errorf("expected 3 sections, got %d", len(c.Sections))
	}
}
