package llm

import (
	"context"
	"time"

	"github.com/YanguiHadil/unihelp/internal/log"
)

// RetryConfig shapes the exponential backoff around an operation.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// DefaultRetryConfig retries three times, sleeping 2s then 4s between
// attempts.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   2 * time.Second,
	}
}

// WithRetry runs op up to cfg.MaxAttempts times, doubling the delay
// after each failure. It stops early when ctx is cancelled, including
// during the backoff sleep.
func WithRetry(ctx context.Context, cfg RetryConfig, logger log.Logger, op func(ctx context.Context) (string, error)) (string, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	delay := cfg.BaseDelay
	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt == cfg.MaxAttempts {
			break
		}
		logger.Warn("attempt failed, backing off",
			"attempt", attempt, "max_attempts", cfg.MaxAttempts, "delay", delay, "error", err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}

	logger.Error("all attempts failed", "attempts", cfg.MaxAttempts, "error", lastErr)
	return "", lastErr
}
