package corpus

import (
	"strings"
)

const (
	// minPartialChars is the smallest tail of budget worth filling with
	// a truncated section. Below this the partial text is too small to
	// ground an answer.
	minPartialChars = 500

	// truncationMarker is appended to a partially included section.
	truncationMarker = "\n..."
)

// rule maps a set of query keywords to one section label. Keywords
// match as substrings of the lowercased query.
type rule struct {
	keywords []string
	label    string
}

// defaultRules is the fixed topic-to-section mapping for the official
// university document. Mixed French/English keywords because students
// ask in both.
var defaultRules = []rule{
	{[]string{"inscription", "inscri", "réinscription", "enroll", "documents obligatoires", "frais inscription"}, "SECTION 1"},
	{[]string{"certificat", "attestation", "relevé", "notes", "scolarité", "certificate"}, "SECTION 2"},
	{[]string{"bourse", "aide financière", "prêt", "scholarship", "financial aid", "mobilité"}, "SECTION 3"},
	{[]string{"stage", "internship", "convention", "entreprise", "rapport", "soutenance"}, "SECTION 4"},
	{[]string{"absence", "justification", "assiduité", "présence", "retard"}, "SECTION 5"},
	{[]string{"examen", "rattrapage", "évaluation", "test", "exam", "compensation", "note", "fraude"}, "SECTION 6"},
	{[]string{"paiement", "frais", "tarif", "remboursement", "payment", "fee", "échéance"}, "SECTION 7"},
	{[]string{"calendrier", "date", "semestre", "vacances", "calendar", "rentrée"}, "SECTION 8"},
	{[]string{"règlement", "discipline", "sanction", "interdiction", "droits", "devoirs", "regulation"}, "SECTION 9"},
	{[]string{"bibliothèque", "restaurant", "cantine", "logement", "résidence", "sport", "library", "service"}, "SECTION 10"},
	{[]string{"contact", "email", "téléphone", "urgence", "service", "bureau", "scolarité"}, "SECTION 11"},
}

// defaultFallbackLabels ground a query that matches no rule. A query
// must always receive some context, so the most general sections are
// used: enrollment, certificates, regulations.
var defaultFallbackLabels = []string{"SECTION 1", "SECTION 2", "SECTION 9"}

// Selector maps a free-text query to a bounded subset of corpus text.
// Selection is a pure function of (corpus, query, budget); a Selector
// holds only the static rule table and is safe for concurrent use.
type Selector struct {
	rules    []rule
	fallback []string
}

// NewSelector returns a Selector with the built-in topic rules.
func NewSelector() *Selector {
	return &Selector{rules: defaultRules, fallback: defaultFallbackLabels}
}

// Select returns the relevant sections of c for query, concatenated
// with blank lines, up to maxChars characters (plus at most the
// truncation marker). Relevant sections are emitted in document order,
// which is deterministic and matches ascending label order in a
// conventionally numbered corpus. When the corpus has no parseable
// sections the first maxChars characters of raw text are returned, so
// the result is never empty for a non-empty corpus.
func (s *Selector) Select(c *Corpus, query string, maxChars int) string {
	if c.Empty() || maxChars <= 0 {
		return ""
	}

	relevant := s.relevantLabels(query)

	var parts []string
	total := 0
	for _, sec := range c.Sections {
		if !relevant[sec.Label] {
			continue
		}
		content := []rune(sec.Content)
		if total+len(content) < maxChars {
			parts = append(parts, sec.Content)
			total += len(content)
			continue
		}
		// Whole section does not fit; take the remaining budget if the
		// tail is still meaningful, then stop either way.
		if remaining := maxChars - total; remaining > minPartialChars {
			parts = append(parts, string(content[:remaining])+truncationMarker)
		}
		break
	}

	if len(parts) == 0 {
		return truncateRunes(c.Raw, maxChars)
	}
	return strings.Join(parts, "\n\n")
}

// relevantLabels returns the set of section labels matched by query
// keywords, or the fallback set when nothing matches.
func (s *Selector) relevantLabels(query string) map[string]bool {
	q := strings.ToLower(query)

	labels := make(map[string]bool)
	for _, r := range s.rules {
		for _, kw := range r.keywords {
			if strings.Contains(q, kw) {
				labels[r.label] = true
				break
			}
		}
	}

	if len(labels) == 0 {
		for _, label := range s.fallback {
			labels[label] = true
		}
	}
	return labels
}

// truncateRunes returns the first n characters of s without splitting
// a multi-byte rune.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
