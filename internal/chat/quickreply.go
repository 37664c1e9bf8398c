package chat

import (
	"strings"

	"github.com/YanguiHadil/unihelp/internal/i18n"
)

// Quick reply kinds. The kind doubles as the i18n key suffix.
const (
	QuickReplyGreeting = "greeting"
	QuickReplyThanks   = "thanks"
)

// greetingWords and thanksWords cover French, English and Tunisian
// dialect spellings, including the digit-for-letter arabizi forms.
var greetingWords = map[string]bool{
	"salut": true, "bonjour": true, "bonsoir": true,
	"hello": true, "hi": true, "hey": true,
	"salam": true, "slm": true,
	"aslema": true, "asslema": true, "ahla": true,
	"marhba": true, "mar7ba": true,
}

var thanksWords = map[string]bool{
	"merci": true, "thanks": true, "chokran": true,
	"choukrane": true, "bravo": true,
}

// thanksPhrases are multi-word inputs matched as a whole.
var thanksPhrases = map[string]bool{
	"thank you": true,
}

// MatchQuickReply reports whether question is social chatter that
// deserves a canned answer instead of a model call. Any greeting or
// thanks token anywhere in the question fires the matcher, so padded
// turns like "merci beaucoup" never reach the backend. It returns the
// quick reply kind and true on a match.
func MatchQuickReply(question string) (string, bool) {
	normalized := normalizeQuickReply(question)
	if normalized == "" {
		return "", false
	}
	if thanksPhrases[normalized] {
		return QuickReplyThanks, true
	}

	tokens := strings.Fields(normalized)
	if anyIn(tokens, greetingWords) {
		return QuickReplyGreeting, true
	}
	if anyIn(tokens, thanksWords) {
		return QuickReplyThanks, true
	}
	return "", false
}

// QuickReply renders the canned answer for kind in lang.
func QuickReply(lang, kind string) string {
	return i18n.T(lang, "quickreply."+kind)
}

func normalizeQuickReply(question string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(question)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		case r == '!' || r == '.' || r == ',' || r == '?':
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func anyIn(tokens []string, vocab map[string]bool) bool {
	for _, tok := range tokens {
		if vocab[tok] {
			return true
		}
	}
	return false
}
