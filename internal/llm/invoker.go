package llm

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/time/rate"

	"github.com/YanguiHadil/unihelp/internal/log"
)

// DefaultModels are the candidate models tried in order: the fast one
// first, the larger one as fallback.
var DefaultModels = []string{
	"llama-3.1-8b-instant",
	"llama-3.3-70b-versatile",
}

// Invoker tries an ordered list of model candidates against one
// backend and returns the first non-empty answer.
type Invoker struct {
	completer Completer
	models    []string
	limiter   *rate.Limiter
	logger    log.Logger
}

// InvokerOption tweaks Invoker construction.
type InvokerOption func(*Invoker)

// WithModels overrides the candidate list.
func WithModels(models []string) InvokerOption {
	return func(inv *Invoker) { inv.models = models }
}

// WithLimiter throttles outbound attempts. Each candidate attempt
// waits for a token before calling the backend.
func WithLimiter(l *rate.Limiter) InvokerOption {
	return func(inv *Invoker) { inv.limiter = l }
}

// NewInvoker wires a Completer behind the candidate fallback chain.
func NewInvoker(completer Completer, logger log.Logger, opts ...InvokerOption) *Invoker {
	inv := &Invoker{
		completer: completer,
		models:    DefaultModels,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// Invoke runs the messages through each candidate model until one
// returns a non-empty completion. Every candidate gets exactly one
// attempt per Invoke call; callers wanting retries wrap Invoke.
func (inv *Invoker) Invoke(ctx context.Context, messages []Message, temperature float64) (string, error) {
	if len(inv.models) == 0 {
		return "", ErrNoCandidates
	}

	var lastErr error
	for _, model := range inv.models {
		if inv.limiter != nil {
			if err := inv.limiter.Wait(ctx); err != nil {
				return "", err
			}
		}

		answer, err := inv.completer.Complete(ctx, Request{
			Model:       model,
			Messages:    messages,
			Temperature: temperature,
		})
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			inv.logger.Warn("model attempt failed", "model", model, "error", err)
			lastErr = err
			continue
		}
		if strings.TrimSpace(answer) == "" {
			inv.logger.Warn("model returned empty completion", "model", model)
			lastErr = ErrEmptyCompletion
			continue
		}

		inv.logger.Debug("model answered", "model", model, "chars", len(answer))
		return answer, nil
	}

	return "", fmt.Errorf("%w: %w", ErrModelsExhausted, lastErr)
}

// Models returns the candidate list in attempt order.
func (inv *Invoker) Models() []string {
	out := make([]string, len(inv.models))
	copy(out, inv.models)
	return out
}
