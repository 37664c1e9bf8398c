package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// GroqBaseURL is the OpenAI-compatible endpoint exposed by Groq.
const GroqBaseURL = "https://api.groq.com/openai/v1"

// ErrMissingAPIKey means the client was built without credentials.
var ErrMissingAPIKey = errors.New("llm: missing API key")

// GroqClient is a Completer backed by the Groq chat completion API.
type GroqClient struct {
	client openai.Client
}

// GroqOption tweaks client construction.
type GroqOption func(*groqOptions)

type groqOptions struct {
	baseURL string
}

// WithBaseURL points the client at a different endpoint, mainly for
// tests against a local httptest server.
func WithBaseURL(url string) GroqOption {
	return func(o *groqOptions) { o.baseURL = url }
}

// NewGroqClient builds a Groq-backed Completer.
func NewGroqClient(apiKey string, opts ...GroqOption) (*GroqClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	options := groqOptions{baseURL: GroqBaseURL}
	for _, opt := range opts {
		opt(&options)
	}
	return &GroqClient{
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(options.baseURL),
		),
	}, nil
}

// Complete runs one chat completion and returns the trimmed text.
func (c *GroqClient) Complete(ctx context.Context, req Request) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)),
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	for _, msg := range req.Messages {
		switch msg.Role {
		case RoleSystem:
			params.Messages = append(params.Messages, openai.SystemMessage(msg.Content))
		case RoleAssistant:
			params.Messages = append(params.Messages, openai.AssistantMessage(msg.Content))
		default:
			params.Messages = append(params.Messages, openai.UserMessage(msg.Content))
		}
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
