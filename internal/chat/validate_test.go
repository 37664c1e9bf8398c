package chat

import (
	"errors"
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "comment faire l'inscription", "comment faire l&#39;inscription"},
		{"strips brackets", "notes <script> {x} [y] (z) `cmd`", "notes script x y z cmd"},
		{"trims", "  bonjour  ", "bonjour"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateQuestion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		question string
		wantErr  error
	}{
		{"valid", "comment s'inscrire", nil},
		{"min length", "abc", nil},
		{"empty", "", ErrQuestionEmpty},
		{"whitespace only", "   ", ErrQuestionEmpty},
		{"too short", "ab", ErrInvalidQuestion},
		{"too long", strings.Repeat("a b ", 200), ErrInvalidQuestion},
		{"spam run", "aide" + strings.Repeat("e", 11), ErrInvalidQuestion},
		{"ten repeats allowed", "hmm" + strings.Repeat("m", 7) + " notes", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateQuestion(tt.question)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateQuestion(%q) = %v, want %v", tt.question, err, tt.wantErr)
			}
		})
	}
}
