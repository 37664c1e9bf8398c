// Package llm talks to chat completion backends. A Completer is one
// backend, an Invoker walks an ordered list of model candidates until
// one of them answers.
package llm

import (
	"context"
	"errors"
)

// Chat message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single chat turn sent to a backend.
type Message struct {
	Role    string
	Content string
}

// Request is one completion call.
type Request struct {
	Model       string
	Messages    []Message
	Temperature float64
}

// Completer is a chat completion backend.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Sentinel errors surfaced by this package.
var (
	ErrNoCandidates    = errors.New("llm: no model candidates configured")
	ErrModelsExhausted = errors.New("llm: all model candidates failed")
	ErrEmptyCompletion = errors.New("llm: backend returned an empty completion")
)

func System(content string) Message    { return Message{Role: RoleSystem, Content: content} }
func User(content string) Message      { return Message{Role: RoleUser, Content: content} }
func Assistant(content string) Message { return Message{Role: RoleAssistant, Content: content} }
