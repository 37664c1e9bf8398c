// Package corpus loads and indexes the official reference document.
//
// The document is a single UTF-8 text file partitioned into labeled
// sections by lines beginning with "SECTION ". The corpus is parsed
// once at load time into typed Section records; per-query work only
// walks the parsed structure.
package corpus

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

// sectionMarker starts a section header line, e.g. "SECTION 4: Stages".
const sectionMarker = "SECTION "

// Section is a labeled, contiguous span of corpus text. Content
// includes the header line itself.
type Section struct {
	Label   string
	Content string
}

// Corpus is the parsed reference document. Immutable once built.
type Corpus struct {
	Raw      string
	Sections []Section
}

// Empty reports whether the corpus carries no text at all.
func (c *Corpus) Empty() bool {
	return c == nil || strings.TrimSpace(c.Raw) == ""
}

// Section returns the section with the given label, if present.
func (c *Corpus) Section(label string) (Section, bool) {
	for _, s := range c.Sections {
		if s.Label == label {
			return s, true
		}
	}
	return Section{}, false
}

// New parses raw document text into a Corpus.
func New(raw string) *Corpus {
	return &Corpus{
		Raw:      strings.TrimSpace(raw),
		Sections: parseSections(raw),
	}
}

// Load reads the corpus from path. A missing file yields an empty
// corpus rather than an error; callers decide whether that is fatal.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(""), nil
		}
		return nil, err
	}
	return New(string(data)), nil
}

// parseSections scans the document line by line. A line beginning with
// the section marker starts a new section; subsequent lines accumulate
// into it until the next header. Text before the first header belongs
// to no section and is only reachable through the raw-text fallback.
func parseSections(raw string) []Section {
	var (
		sections []Section
		label    string
		lines    []string
	)

	flush := func() {
		if label != "" && len(lines) > 0 {
			sections = append(sections, Section{
				Label:   label,
				Content: strings.TrimRight(strings.Join(lines, "\n"), " \t\n"),
			})
		}
		lines = nil
	}

	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, sectionMarker) {
			flush()
			label = headerLabel(line)
			lines = []string{line}
			continue
		}
		if label != "" {
			lines = append(lines, line)
		}
	}
	flush()

	return sections
}

// headerLabel extracts the label from a header line: the part before
// the first colon, or the first two fields when no colon is present
// ("SECTION 4: Stages" and "SECTION 4" both label as "SECTION 4").
func headerLabel(line string) string {
	if before, _, found := strings.Cut(line, ":"); found {
		return strings.TrimSpace(before)
	}
	fields := strings.Fields(line)
	if len(fields) >= 2 {
		return fields[0] + " " + fields[1]
	}
	return strings.TrimSpace(line)
}
