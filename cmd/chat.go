package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/YanguiHadil/unihelp/internal/app"
	"github.com/YanguiHadil/unihelp/internal/chat"
	"github.com/YanguiHadil/unihelp/internal/config"
	"github.com/YanguiHadil/unihelp/internal/i18n"
)

// runChat starts the interactive terminal loop.
func runChat() error {
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

	fmt.Println(i18n.T(lang, "app.title"))
	fmt.Println(i18n.T(lang, "chat.welcome"))
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			done, newLang := handleChatCommand(a, line, lang)
			lang = newLang
			if done {
				break
			}
			continue
		}

		reply, err := a.Assistant.Answer(ctx, sess.ID, lang, line)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			fmt.Println(localizeChatError(lang, err))
			continue
		}
		fmt.Println(reply.Text)
		fmt.Println()

		sess = a.Sessions.Get(sess.ID)
	}

	fmt.Println(i18n.T(lang, "chat.goodbye"))
	return scanner.Err()
}

// handleChatCommand processes /commands. It returns true when the
// loop should exit, and the possibly updated language.
func handleChatCommand(a *app.App, line, lang string) (bool, string) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/exit", "/quit":
		return true, lang
	case "/new":
		id := a.History.StartNewConversation()
		fmt.Println("conversation:", id)
	case "/lang":
		if len(fields) < 2 {
			fmt.Println("usage: /lang <fr|en|tn>")
			break
		}
		lang = i18n.Normalize(fields[1])
		fmt.Println("language:", lang)
	case "/help":
		fmt.Println("/new, /lang <fr|en|tn>, /exit")
	default:
		fmt.Println("unknown command:", fields[0])
	}
	return false, lang
}

// localizeChatError maps assistant errors to user-facing messages.
func localizeChatError(lang string, err error) string {
	switch {
	case errors.Is(err, chat.ErrQuestionEmpty):
		return i18n.T(lang, "error.no_question")
	case errors.Is(err, chat.ErrInvalidQuestion):
		return i18n.T(lang, "error.invalid")
	case errors.Is(err, chat.ErrRateLimited):
		return i18n.T(lang, "rate.limit")
	case errors.Is(err, chat.ErrNoDocuments):
		return i18n.T(lang, "error.docs")
	default:
		return i18n.T(lang, "error.backend")
	}
}
