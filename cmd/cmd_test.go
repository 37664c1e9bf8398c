package cmd

import (
	"errors"
	"testing"

	"github.com/YanguiHadil/unihelp/internal/chat"
)

func TestLocalizeChatError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"empty question", chat.ErrQuestionEmpty, "Veuillez entrer une question."},
		{"invalid question", chat.ErrInvalidQuestion, "Question invalide. Reformulez votre question, s'il vous plaît."},
		{"rate limited", chat.ErrRateLimited, "Limite de requêtes atteinte. Veuillez patienter."},
		{"no documents", chat.ErrNoDocuments, "Fichier documents.txt introuvable."},
		{"backend", errors.New("boom"), "Le service est momentanément indisponible. Réessayez dans un instant."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := localizeChatError("FR", tt.err); got != tt.want {
				t.Errorf("localizeChatError(FR, %v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
