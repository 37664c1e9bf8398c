package chat

import (
	"testing"

	"github.com/YanguiHadil/unihelp/internal/i18n"
)

func TestMatchQuickReply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		question string
		wantKind string
		wantOK   bool
	}{
		{"bonjour", QuickReplyGreeting, true},
		{"Salut!", QuickReplyGreeting, true},
		{"aslema", QuickReplyGreeting, true},
		{"mar7ba", QuickReplyGreeting, true},
		{"hello hi", QuickReplyGreeting, true},
		{"merci", QuickReplyThanks, true},
		{"Thank you.", QuickReplyThanks, true},
		{"chokran bravo", QuickReplyThanks, true},

		// One social token anywhere suffices, however padded.
		{"merci beaucoup", QuickReplyThanks, true},
		{"thanks a lot", QuickReplyThanks, true},
		{"bonjour tout le monde", QuickReplyGreeting, true},
		{"bonjour comment faire l'inscription", QuickReplyGreeting, true},

		// Turns with no social token must reach the model.
		{"comment s'inscrire", "", false},
		{"quels documents pour le stage", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			t.Parallel()
			kind, ok := MatchQuickReply(tt.question)
			if ok != tt.wantOK || kind != tt.wantKind {
				t.Errorf("MatchQuickReply(%q) = (%q, %v), want (%q, %v)",
					tt.question, kind, ok, tt.wantKind, tt.wantOK)
			}
		})
	}
}

func TestQuickReplyLocalized(t *testing.T) {
	t.Parallel()

	for _, lang := range i18n.Languages() {
		for _, kind := range []string{QuickReplyGreeting, QuickReplyThanks} {
			if text := QuickReply(lang, kind); text == "" || text == "quickreply."+kind {
				t.Errorf("missing %s quick reply for %s", kind, lang)
			}
		}
	}
}
