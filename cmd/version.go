package cmd

import (
	"fmt"
	"os"
)

// Version information (injected at build time via ldflags).
var (
	Version   = "development"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// runVersion prints build information.
func runVersion() {
	fmt.Printf("UniHelp %s\n", Version)
	fmt.Printf("Build Time: %s\n", BuildTime)
	fmt.Printf("Git Commit: %s\n", GitCommit)

	if key := os.Getenv("GROQ_API_KEY"); key != "" {
		fmt.Println("GROQ_API_KEY: configured")
	} else {
		fmt.Println("GROQ_API_KEY: not set")
		fmt.Println()
		fmt.Println("Hint: export GROQ_API_KEY=your-api-key")
	}
}
