// Package cmd provides the CLI commands for UniHelp.
//
// Commands:
//   - chat: interactive question answering in the terminal
//   - ask: answer a single question and exit
//   - email: draft an administrative email
//   - history: list, delete or clear saved conversations
//   - serve: HTTP API server
//
// All long-running commands shut down gracefully on SIGINT/SIGTERM via
// context cancellation.
package cmd

import (
	"fmt"
	"os"
)

// Execute is the main entry point for the UniHelp CLI.
func Execute() error {
	if len(os.Args) < 2 {
		return runChat()
	}

	switch os.Args[1] {
	case "chat":
		return runChat()
	case "ask":
		return runAsk(os.Args[2:])
	case "email":
		return runEmail(os.Args[2:])
	case "history":
		return runHistory(os.Args[2:])
	case "serve":
		return runServe()
	case "version", "--version", "-v":
		runVersion()
		return nil
	case "help", "--help", "-h":
		runHelp()
		return nil
	default:
		return fmt.Errorf("unknown command: %s", os.Args[1])
	}
}

// runHelp displays the help message.
func runHelp() {
	fmt.Println("UniHelp - Assistant universitaire")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  unihelp chat                     Start interactive Q&A (default)")
	fmt.Println("  unihelp ask <question>           Answer one question and exit")
	fmt.Println("  unihelp email <type> [details]   Draft an administrative email")
	fmt.Println("                                   Types: cert, intern, absence, complaint")
	fmt.Println("  unihelp history [delete <id>|clear]")
	fmt.Println("                                   Manage saved conversations")
	fmt.Println("  unihelp serve                    Start the HTTP API server")
	fmt.Println("  unihelp --version                Show version information")
	fmt.Println("  unihelp --help                   Show this help")
	fmt.Println()
	fmt.Println("Chat commands (in interactive mode):")
	fmt.Println("  /new               Start a new conversation")
	fmt.Println("  /lang <fr|en|tn>   Switch language")
	fmt.Println("  /exit, /quit       Leave the chat")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  GROQ_API_KEY          Required: Groq API key")
	fmt.Println("  UNIHELP_DOCUMENTS     Optional: path to documents.txt")
	fmt.Println("  UNIHELP_LANGUAGE      Optional: default language (FR, EN, TN)")
	fmt.Println("  UNIHELP_LOG_LEVEL     Optional: debug, info, warn, error")
}
