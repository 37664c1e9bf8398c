package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/YanguiHadil/unihelp/internal/app"
	"github.com/YanguiHadil/unihelp/internal/config"
	"github.com/YanguiHadil/unihelp/internal/i18n"
)

// runAsk answers a single question and exits.
func runAsk(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: unihelp ask <question>")
	}
	question := strings.Join(args, " ")

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

	reply, err := a.Assistant.Answer(ctx, sess.ID, lang, question)
	if err != nil {
		return errors.New(localizeChatError(lang, err))
	}

	fmt.Println(reply.Text)
	return nil
}
