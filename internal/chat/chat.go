// Package chat implements the UniHelp assistant: document-grounded
// question answering and administrative email drafting on top of the
// corpus, llm, history and cache layers.
package chat

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/YanguiHadil/unihelp/internal/analytics"
	"github.com/YanguiHadil/unihelp/internal/cache"
	"github.com/YanguiHadil/unihelp/internal/corpus"
	"github.com/YanguiHadil/unihelp/internal/history"
	"github.com/YanguiHadil/unihelp/internal/i18n"
	"github.com/YanguiHadil/unihelp/internal/llm"
	"github.com/YanguiHadil/unihelp/internal/log"
	"github.com/YanguiHadil/unihelp/internal/ratelimit"
)

// Context budgets and sampling temperatures per operation.
const (
	DefaultQABudget    = 4000
	DefaultEmailBudget = 3000

	DefaultQATemperature    = 0.2
	DefaultEmailTemperature = 0.3
)

// historyTurns is how many past turns are replayed into the prompt.
const historyTurns = 3

// Sentinel errors returned by the assistant.
var (
	ErrQuestionEmpty    = errors.New("chat: empty question")
	ErrInvalidQuestion  = errors.New("chat: invalid question")
	ErrNoDocuments      = errors.New("chat: no official documents loaded")
	ErrRateLimited      = errors.New("chat: rate limit reached")
	ErrUnknownEmailType = errors.New("chat: unknown email type")
)

// Reply origins.
const (
	OriginModel      = "model"
	OriginQuickReply = "quickreply"
	OriginCache      = "cache"
	OriginNotFound   = "not_found"
)

// Reply is a produced answer plus where it came from.
type Reply struct {
	Text   string
	Origin string
}

// Config wires an Assistant. Corpus, Invoker, History and Logger are
// required, the rest degrade gracefully when absent.
type Config struct {
	Corpus    *corpus.Provider
	Invoker   *llm.Invoker
	History   *history.Store
	Emails    *history.EmailStore
	Limiter   *ratelimit.Limiter
	Cache     cache.Store
	Analytics *analytics.Tracker
	Logger    log.Logger

	Retry llm.RetryConfig

	QABudget    int
	EmailBudget int

	QATemperature    float64
	EmailTemperature float64
}

func (c *Config) validate() error {
	if c.Corpus == nil {
		return errors.New("chat: config requires a corpus provider")
	}
	if c.Invoker == nil {
		return errors.New("chat: config requires an invoker")
	}
	if c.History == nil {
		return errors.New("chat: config requires a history store")
	}
	if c.Logger == nil {
		return errors.New("chat: config requires a logger")
	}
	return nil
}

// Assistant answers questions and drafts emails.
type Assistant struct {
	cfg      Config
	selector *corpus.Selector
}

// NewAssistant validates cfg and fills defaults.
func NewAssistant(cfg Config) (*Assistant, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Retry.MaxAttempts <= 0 {
		cfg.Retry = llm.DefaultRetryConfig()
	}
	if cfg.QABudget <= 0 {
		cfg.QABudget = DefaultQABudget
	}
	if cfg.EmailBudget <= 0 {
		cfg.EmailBudget = DefaultEmailBudget
	}
	if cfg.QATemperature <= 0 {
		cfg.QATemperature = DefaultQATemperature
	}
	if cfg.EmailTemperature <= 0 {
		cfg.EmailTemperature = DefaultEmailTemperature
	}
	return &Assistant{cfg: cfg, selector: corpus.NewSelector()}, nil
}

// RemainingQuota returns how many requests the session may still make
// in the current rate window. Without a limiter the quota is unbounded
// and -1 is returned.
func (a *Assistant) RemainingQuota(sessionID string) int {
	if a.cfg.Limiter == nil {
		return -1
	}
	return a.cfg.Limiter.Remaining(sessionID)
}

// Answer handles one user question end to end: validation, quick
// replies, rate limiting, caching, context selection and the model
// call. Successful answers are appended to the conversation history.
func (a *Assistant) Answer(ctx context.Context, sessionID, lang, question string) (Reply, error) {
	lang = i18n.Normalize(lang)

	sanitized := Sanitize(question)
	if err := ValidateQuestion(sanitized); err != nil {
		return Reply{}, err
	}

	docs := a.cfg.Corpus.Corpus()
	if docs.Empty() {
		return Reply{}, ErrNoDocuments
	}

	if kind, ok := MatchQuickReply(sanitized); ok {
		text := QuickReply(lang, kind)
		a.cfg.History.Append(sanitized, text)
		a.track(analytics.EventQuickReply, sessionID, map[string]string{"kind": kind})
		return Reply{Text: text, Origin: OriginQuickReply}, nil
	}

	if a.cfg.Limiter != nil && !a.cfg.Limiter.Allow(sessionID) {
		a.track(analytics.EventRateLimited, sessionID, nil)
		return Reply{}, ErrRateLimited
	}

	// Only context-free questions are cacheable: once the conversation
	// has turns, the same question can mean something else.
	contextFree := len(a.cfg.History.Recent(historyTurns)) == 0
	key := questionCacheKey(lang, sanitized)
	if a.cfg.Cache != nil && contextFree {
		if cached, ok, err := a.cfg.Cache.Get(ctx, key); err == nil && ok {
			a.cfg.History.Append(sanitized, cached)
			a.track(analytics.EventCacheHit, sessionID, nil)
			return Reply{Text: cached, Origin: OriginCache}, nil
		}
	}

	messages := a.qaMessages(lang, docs, sanitized)

	answer, err := llm.WithRetry(ctx, a.cfg.Retry, a.cfg.Logger, func(ctx context.Context) (string, error) {
		return a.cfg.Invoker.Invoke(ctx, messages, a.cfg.QATemperature)
	})
	origin := OriginModel
	switch {
	case errors.Is(err, llm.ErrEmptyCompletion):
		answer = i18n.T(lang, "not_found")
		origin = OriginNotFound
	case err != nil:
		a.track(analytics.EventModelFailure, sessionID, nil)
		return Reply{}, fmt.Errorf("answering question: %w", err)
	case answer == i18n.T(lang, "not_found"):
		origin = OriginNotFound
	}

	a.cfg.History.Append(sanitized, answer)
	a.track(analytics.EventQuestionAsked, sessionID, map[string]string{"lang": lang})

	if a.cfg.Cache != nil && contextFree && origin == OriginModel {
		if err := a.cfg.Cache.Set(ctx, key, answer); err != nil {
			a.cfg.Logger.Warn("cache answer", "error", err)
		}
	}

	return Reply{Text: answer, Origin: origin}, nil
}

// GenerateEmail drafts an administrative email of the given type. An
// empty corpus is tolerated here, the model can draft a generic email
// without document context.
func (a *Assistant) GenerateEmail(ctx context.Context, sessionID, lang, emailType, details string) (string, error) {
	lang = i18n.Normalize(lang)
	if !IsEmailType(emailType) {
		return "", fmt.Errorf("%w: %q", ErrUnknownEmailType, emailType)
	}

	if a.cfg.Limiter != nil && !a.cfg.Limiter.Allow(sessionID) {
		a.track(analytics.EventRateLimited, sessionID, nil)
		return "", ErrRateLimited
	}

	details = Sanitize(details)

	key := emailCacheKey(lang, emailType, details)
	cacheable := strings.TrimSpace(details) == ""
	if a.cfg.Cache != nil && cacheable {
		if cached, ok, err := a.cfg.Cache.Get(ctx, key); err == nil && ok {
			a.recordEmail(emailType, cached)
			a.track(analytics.EventCacheHit, sessionID, nil)
			return cached, nil
		}
	}

	docs := a.cfg.Corpus.Corpus()
	contextText := a.selector.Select(docs, EmailTypeLabel(lang, emailType)+" "+details, a.cfg.EmailBudget)

	messages := []llm.Message{
		llm.System(emailPersona(lang)),
		llm.User(emailUserPrompt(lang, emailType, details, contextText)),
	}

	email, err := llm.WithRetry(ctx, a.cfg.Retry, a.cfg.Logger, func(ctx context.Context) (string, error) {
		return a.cfg.Invoker.Invoke(ctx, messages, a.cfg.EmailTemperature)
	})
	if err != nil {
		a.track(analytics.EventModelFailure, sessionID, nil)
		return "", fmt.Errorf("generating email: %w", err)
	}

	a.recordEmail(emailType, email)
	a.track(analytics.EventEmailGenerated, sessionID, map[string]string{"type": emailType, "lang": lang})

	if a.cfg.Cache != nil && cacheable {
		if err := a.cfg.Cache.Set(ctx, key, email); err != nil {
			a.cfg.Logger.Warn("cache email", "error", err)
		}
	}

	return email, nil
}

// qaMessages assembles the prompt: persona, the last few turns of the
// active conversation, then the context-grounded question.
func (a *Assistant) qaMessages(lang string, docs *corpus.Corpus, question string) []llm.Message {
	recent := a.cfg.History.Recent(historyTurns)

	messages := make([]llm.Message, 0, 2+2*len(recent))
	messages = append(messages, llm.System(qaPersona(lang)))
	for _, turn := range recent {
		messages = append(messages, llm.User(turn.Question), llm.Assistant(turn.Answer))
	}

	contextText := a.selector.Select(docs, question, a.cfg.QABudget)
	messages = append(messages, llm.User(qaUserPrompt(contextText, question)))
	return messages
}

func (a *Assistant) recordEmail(emailType, content string) {
	if a.cfg.Emails != nil {
		a.cfg.Emails.Append(emailType, content)
	}
}

func (a *Assistant) track(event, sessionID string, fields map[string]string) {
	if a.cfg.Analytics != nil {
		a.cfg.Analytics.Record(event, sessionID, fields)
	}
}

func questionCacheKey(lang, question string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(question)))
	return "qa:" + lang + ":" + hex.EncodeToString(sum[:16])
}

func emailCacheKey(lang, emailType, details string) string {
	sum := sha256.Sum256([]byte(details))
	return "email:" + lang + ":" + emailType + ":" + hex.EncodeToString(sum[:8])
}
