package i18n

import "testing"

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"fr", LangFR},
		{"French", LangFR},
		{" FRANCAIS ", LangFR},
		{"en", LangEN},
		{"english", LangEN},
		{"tn", LangTN},
		{"tounsi", LangTN},
		{"", LangFR},
		{"de", LangFR}, // unknown falls back to the default
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTFallsBackToFrench(t *testing.T) {
	t.Parallel()

	// A key present in all languages resolves per language.
	if got := T(LangEN, "not_found"); got != messagesEN["not_found"] {
		t.Errorf("EN lookup returned %q", got)
	}
	if got := T(LangTN, "not_found"); got != messagesTN["not_found"] {
		t.Errorf("TN lookup returned %q", got)
	}

	// Unknown language falls back to French.
	if got := T("XX", "not_found"); got != messagesFR["not_found"] {
		t.Errorf("fallback lookup returned %q", got)
	}

	// Unknown key returns the key itself.
	if got := T(LangFR, "no.such.key"); got != "no.such.key" {
		t.Errorf("missing key returned %q", got)
	}
}

func TestSprintf(t *testing.T) {
	t.Parallel()

	if got := Sprintf(LangFR, "history.deleted.conv", "20240101_120000"); got != "Conversation 20240101_120000 supprimée." {
		t.Errorf("Sprintf returned %q", got)
	}
	if got := Sprintf(LangEN, "history.deleted.conv", "20240101_120000"); got != "Conversation 20240101_120000 deleted." {
		t.Errorf("Sprintf returned %q", got)
	}
}

func TestAllLanguagesShareCoreKeys(t *testing.T) {
	t.Parallel()

	core := []string{
		"not_found", "rate.limit", "error.docs", "error.no_question",
		"quickreply.greeting", "quickreply.thanks",
		"export.subject", "export.body", "export.closing",
	}

	for _, lang := range Languages() {
		for _, key := range core {
			if _, ok := messages[lang][key]; !ok {
				t.Errorf("language %s missing key %s", lang, key)
			}
		}
	}
}
