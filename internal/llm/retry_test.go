package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/YanguiHadil/unihelp/internal/log"
)

func TestWithRetrySucceedsAfterFailure(t *testing.T) {
	t.Parallel()

	attempts := 0
	result, err := WithRetry(context.Background(),
		RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond},
		log.NewNop(),
		func(context.Context) (string, error) {
			attempts++
			if attempts < 2 {
				return "", errors.New("transient")
			}
			return "ok", nil
		})
	if err != nil {
		t.Fatalf("WithRetry: %v", err)
	}
	if result != "ok" || attempts != 2 {
		t.Errorf("result = %q after %d attempts", result, attempts)
	}
}

func TestWithRetryExhausts(t *testing.T) {
	t.Parallel()

	final := errors.New("still down")
	attempts := 0
	_, err := WithRetry(context.Background(),
		RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond},
		log.NewNop(),
		func(context.Context) (string, error) {
			attempts++
			return "", final
		})
	if !errors.Is(err, final) {
		t.Fatalf("err = %v, want the last failure", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestWithRetryNoSleepAfterLastAttempt(t *testing.T) {
	t.Parallel()

	start := time.Now()
	_, err := WithRetry(context.Background(),
		RetryConfig{MaxAttempts: 1, BaseDelay: time.Hour},
		log.NewNop(),
		func(context.Context) (string, error) {
			return "", errors.New("down")
		})
	if err == nil {
		t.Fatal("expected failure")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("single attempt must not back off, took %v", elapsed)
	}
}

func TestWithRetryHonorsCancellationDuringBackoff(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := WithRetry(ctx,
		RetryConfig{MaxAttempts: 3, BaseDelay: time.Hour},
		log.NewNop(),
		func(context.Context) (string, error) {
			return "", errors.New("down")
		})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestWithRetryZeroAttemptsRunsOnce(t *testing.T) {
	t.Parallel()

	attempts := 0
	result, err := WithRetry(context.Background(), RetryConfig{}, log.NewNop(),
		func(context.Context) (string, error) {
			attempts++
			return "ok", nil
		})
	if err != nil || result != "ok" || attempts != 1 {
		t.Errorf("result = %q, err = %v, attempts = %d", result, err, attempts)
	}
}
