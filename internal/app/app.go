// Package app wires the application together: configuration, logging,
// document corpus, history stores, cache, rate limiting and the model
// backend, assembled into a ready-to-use Assistant.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/YanguiHadil/unihelp/internal/analytics"
	"github.com/YanguiHadil/unihelp/internal/cache"
	"github.com/YanguiHadil/unihelp/internal/chat"
	"github.com/YanguiHadil/unihelp/internal/config"
	"github.com/YanguiHadil/unihelp/internal/corpus"
	"github.com/YanguiHadil/unihelp/internal/history"
	"github.com/YanguiHadil/unihelp/internal/llm"
	"github.com/YanguiHadil/unihelp/internal/log"
	"github.com/YanguiHadil/unihelp/internal/ratelimit"
	"github.com/YanguiHadil/unihelp/internal/session"
)

// App is the application container.
type App struct {
	Config    *config.Config
	Logger    log.Logger
	Corpus    *corpus.Provider
	Assistant *chat.Assistant
	History   *history.Store
	Emails    *history.EmailStore
	Analytics *analytics.Tracker
	Sessions  *session.Manager

	redisClient *redis.Client
	cancel      context.CancelFunc
}

// Setup builds the full application from configuration. The returned
// App owns a background corpus watcher bound to ctx.
func Setup(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := log.New(log.Config{Level: log.ParseLevel(cfg.LogLevel), JSON: cfg.LogJSON})

	if err := cfg.RequireAPIKey(); err != nil {
		return nil, err
	}

	provider, err := corpus.NewProvider(cfg.DocumentsPath, cfg.RefreshTTL, logger)
	if err != nil {
		return nil, fmt.Errorf("loading documents: %w", err)
	}

	store := history.NewStore(cfg.ChatHistoryPath(), cfg.MaxHistory, logger)
	emails := history.NewEmailStore(cfg.EmailHistoryPath(), logger)
	tracker := analytics.NewTracker(cfg.AnalyticsPath(), cfg.MaxAnalytics, logger)

	var redisClient *redis.Client
	cacheOpts := []cache.Option{cache.WithTTL(cfg.CacheTTL)}
	if cache.Driver(cfg.CacheDriver) == cache.DriverRedis {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		cacheOpts = append(cacheOpts, cache.WithRedisClient(redisClient))
	}
	answerCache, err := cache.New(cache.Driver(cfg.CacheDriver), cacheOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating cache: %w", err)
	}

	completer, err := llm.NewGroqClient(cfg.GroqAPIKey)
	if err != nil {
		return nil, fmt.Errorf("creating model client: %w", err)
	}
	invoker := llm.NewInvoker(completer, logger, llm.WithModels(cfg.Models))

	assistant, err := chat.NewAssistant(chat.Config{
		Corpus:           provider,
		Invoker:          invoker,
		History:          store,
		Emails:           emails,
		Limiter:          ratelimit.New(cfg.RateLimit, cfg.RateWindow),
		Cache:            answerCache,
		Analytics:        tracker,
		Logger:           logger,
		Retry:            llm.RetryConfig{MaxAttempts: cfg.RetryAttempts, BaseDelay: cfg.RetryDelay},
		QABudget:         cfg.QABudget,
		EmailBudget:      cfg.EmailBudget,
		QATemperature:    cfg.QATemperature,
		EmailTemperature: cfg.EmailTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("creating assistant: %w", err)
	}

	sessions := session.NewManager(cfg.SessionTimeout)

	watchCtx, cancel := context.WithCancel(ctx)
	go func() {
		if err := provider.Watch(watchCtx); err != nil && watchCtx.Err() == nil {
			logger.Warn("document watcher stopped", "error", err)
		}
	}()
	go pruneSessions(watchCtx, sessions, cfg.SessionTimeout, logger)

	return &App{
		Config:      cfg,
		Logger:      logger,
		Corpus:      provider,
		Assistant:   assistant,
		History:     store,
		Emails:      emails,
		Analytics:   tracker,
		Sessions:    sessions,
		redisClient: redisClient,
		cancel:      cancel,
	}, nil
}

// pruneSessions sweeps expired sessions once per timeout period, so a
// long-running server does not accumulate dead entries between the
// lazy expirations done on lookup.
func pruneSessions(ctx context.Context, sessions *session.Manager, timeout time.Duration, logger log.Logger) {
	if timeout <= 0 {
		timeout = session.DefaultTimeout
	}
	ticker := time.NewTicker(timeout)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := sessions.Prune(); removed > 0 {
				logger.Debug("pruned expired sessions", "count", removed)
			}
		}
	}
}

// Close shuts down background work and external connections.
func (a *App) Close() error {
	if a.cancel != nil {
		a.cancel()
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			return fmt.Errorf("closing redis client: %w", err)
		}
	}
	return nil
}
