package cmd

import (
	"fmt"

	"github.com/YanguiHadil/unihelp/internal/config"
	"github.com/YanguiHadil/unihelp/internal/history"
	"github.com/YanguiHadil/unihelp/internal/i18n"
	"github.com/YanguiHadil/unihelp/internal/log"
)

// runHistory lists or edits saved conversations. It works offline, so
// no API key is needed.
func runHistory(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := log.New(log.Config{Level: log.ParseLevel(cfg.LogLevel), JSON: cfg.LogJSON})
	store := history.NewStore(cfg.ChatHistoryPath(), cfg.MaxHistory, logger)
	lang := i18n.Normalize(cfg.Language)

	if len(args) == 0 {
		return listHistory(store, lang)
	}

	switch args[0] {
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: unihelp history delete <conversation-id>")
		}
		store.DeleteConversation(args[1])
		fmt.Println(i18n.Sprintf(lang, "history.deleted.conv", args[1]))
		return nil
	case "clear":
		store.ClearAll()
		fmt.Println(i18n.T(lang, "history.cleared"))
		return nil
	default:
		return fmt.Errorf("unknown history subcommand: %s", args[0])
	}
}

func listHistory(store *history.Store, lang string) error {
	conversations := store.Conversations()
	if len(conversations) == 0 {
		fmt.Println(i18n.T(lang, "history.none"))
		return nil
	}

	fmt.Println(i18n.T(lang, "history.chat"))
	for _, conv := range conversations {
		fmt.Printf("\n[%s] %d turns\n", conv.ID, len(conv.Turns))
		for _, turn := range conv.Turns {
			fmt.Printf("  Q: %s\n", turn.Question)
			fmt.Printf("  A: %s\n", turn.Answer)
		}
	}
	return nil
}
