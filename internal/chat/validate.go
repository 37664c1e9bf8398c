package chat

import (
	"html"
	"strings"
)

const (
	minQuestionLen = 3
	maxQuestionLen = 500

	// Runs of the same rune at or above this length mark spam input.
	maxRepeatedRun = 11
)

// strippedChars are removed from user input before it reaches a prompt.
const strippedChars = "<>{}()[]`"

// Sanitize normalizes raw user input: prompt-breaking punctuation is
// stripped, then the rest is HTML-escaped.
func Sanitize(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range strings.TrimSpace(input) {
		if strings.ContainsRune(strippedChars, r) {
			continue
		}
		b.WriteRune(r)
	}
	return html.EscapeString(strings.TrimSpace(b.String()))
}

// ValidateQuestion checks a sanitized question. Empty input yields
// ErrQuestionEmpty, anything too short, too long or spammy yields
// ErrInvalidQuestion.
func ValidateQuestion(question string) error {
	trimmed := strings.TrimSpace(question)
	if trimmed == "" {
		return ErrQuestionEmpty
	}
	runes := []rune(trimmed)
	if len(runes) < minQuestionLen || len(runes) > maxQuestionLen {
		return ErrInvalidQuestion
	}
	if hasRepeatedRun(runes, maxRepeatedRun) {
		return ErrInvalidQuestion
	}
	return nil
}

// hasRepeatedRun reports whether runes contains n or more consecutive
// occurrences of the same rune.
func hasRepeatedRun(runes []rune, n int) bool {
	run := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			run++
			if run >= n {
				return true
			}
			continue
		}
		run = 1
	}
	return len(runes) > 0 && run >= n
}
