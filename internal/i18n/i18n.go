// Package i18n holds the localized message tables for UniHelp.
//
// Three languages are supported: French (the default), English, and
// Tunisian dialect. Lookups are pure functions of (language, key) so a
// single process can serve requests in different languages.
package i18n

import (
	"fmt"
	"strings"
)

// Supported language codes.
const (
	LangFR = "FR"
	LangEN = "EN"
	LangTN = "TN"
)

// messages maps language code to key/value tables. Populated by the
// per-language files in this package.
var messages = map[string]map[string]string{
	LangFR: messagesFR,
	LangEN: messagesEN,
	LangTN: messagesTN,
}

// Normalize maps common spellings of a language to its canonical code.
// Unknown values fall back to French, the application default.
func Normalize(lang string) string {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "fr", "fra", "français", "francais", "french":
		return LangFR
	case "en", "eng", "english":
		return LangEN
	case "tn", "tun", "tounsi", "tunisian", "arabizi":
		return LangTN
	default:
		return LangFR
	}
}

// IsSupported reports whether lang is a canonical supported code.
func IsSupported(lang string) bool {
	_, ok := messages[lang]
	return ok
}

// Languages returns the supported canonical codes.
func Languages() []string {
	return []string{LangFR, LangEN, LangTN}
}

// T returns the message for key in the given language. Missing keys
// fall back to French, then to the key itself so a typo is visible
// instead of silent.
func T(lang, key string) string {
	if msg, ok := messages[lang][key]; ok {
		return msg
	}
	if msg, ok := messages[LangFR][key]; ok {
		return msg
	}
	return key
}

// Sprintf formats the translated message for key with args.
func Sprintf(lang, key string, args ...any) string {
	return fmt.Sprintf(T(lang, key), args...)
}
