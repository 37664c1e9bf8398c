package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/YanguiHadil/unihelp/internal/app"
	"github.com/YanguiHadil/unihelp/internal/chat"
	"github.com/YanguiHadil/unihelp/internal/config"
	"github.com/YanguiHadil/unihelp/internal/i18n"
)

// runEmail drafts an administrative email of the given type.
func runEmail(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: unihelp email <%s> [details]", strings.Join(chat.EmailTypes(), "|"))
	}
	emailType := args[0]
	details := strings.Join(args[1:], " ")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := app.Setup(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing application: %w", err)
	}
	defer a.Close()

	lang := i18n.Normalize(cfg.Language)
	sess := a.Sessions.Get("")

	fmt.Println(i18n.T(lang, "email.generating"))

	draft, err := a.Assistant.GenerateEmail(ctx, sess.ID, lang, emailType, details)
	if err != nil {
		return fmt.Errorf("generating email: %w", err)
	}

	fmt.Println()
	fmt.Println(draft)
	return nil
}
