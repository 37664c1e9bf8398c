// Package api exposes the assistant over a JSON HTTP API.
package api

import (
	"errors"
	"net/http"

	"github.com/YanguiHadil/unihelp/internal/chat"
	"github.com/YanguiHadil/unihelp/internal/corpus"
	"github.com/YanguiHadil/unihelp/internal/history"
	"github.com/YanguiHadil/unihelp/internal/i18n"
	"github.com/YanguiHadil/unihelp/internal/log"
	"github.com/YanguiHadil/unihelp/internal/session"
)

// ServerConfig contains everything the API server needs.
type ServerConfig struct {
	Assistant *chat.Assistant  // Required
	Corpus    *corpus.Provider // Required, drives the readiness probe
	History   *history.Store   // Required
	Emails    *history.EmailStore
	Sessions  *session.Manager
	Logger    log.Logger

	Language   string // Default language for requests that omit one
	TrustProxy bool   // Trust X-Real-IP/X-Forwarded-For headers
	RateBurst  int    // Per-IP burst size (0 = default 60)
}

// Server is the JSON API HTTP server.
type Server struct {
	mux *http.ServeMux
}

// NewServer creates the API server with all routes configured.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Assistant == nil {
		return nil, errors.New("assistant is required")
	}
	if cfg.Corpus == nil {
		return nil, errors.New("corpus provider is required")
	}
	if cfg.History == nil {
		return nil, errors.New("history store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNop()
	}
	sessions := cfg.Sessions
	if sessions == nil {
		sessions = session.NewManager(session.DefaultTimeout)
	}
	language := i18n.Normalize(cfg.Language)

	ch := &chatHandler{
		assistant: cfg.Assistant,
		sessions:  sessions,
		language:  language,
		logger:    logger,
	}
	hh := &historyHandler{
		store:  cfg.History,
		emails: cfg.Emails,
		logger: logger,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/ask", ch.ask)
	mux.HandleFunc("POST /api/v1/email", ch.email)
	mux.HandleFunc("GET /api/v1/email/types", ch.emailTypes)
	mux.HandleFunc("GET /api/v1/languages", ch.languages)

	mux.HandleFunc("GET /api/v1/history", hh.list)
	mux.HandleFunc("DELETE /api/v1/history", hh.clear)
	mux.HandleFunc("DELETE /api/v1/history/{id}", hh.deleteConversation)
	mux.HandleFunc("POST /api/v1/conversations", hh.newConversation)
	if cfg.Emails != nil {
		mux.HandleFunc("GET /api/v1/emails", hh.listEmails)
		mux.HandleFunc("DELETE /api/v1/emails/{index}", hh.deleteEmail)
	}

	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 60
	}
	rl := newIPRateLimiter(1.0, burst)

	// Middleware stack, outermost first:
	//   Recovery → Logging → RateLimit → Routes
	var handler http.Handler = mux
	handler = rateLimitMiddleware(rl, cfg.TrustProxy, logger)(handler)
	handler = loggingMiddleware(logger)(handler)
	handler = recoveryMiddleware(logger)(handler)

	inner := handler
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setSecurityHeaders(w)
		inner.ServeHTTP(w, r)
	})

	// Health probes bypass the middleware stack.
	topMux := http.NewServeMux()
	topMux.HandleFunc("GET /health", health(logger))
	topMux.HandleFunc("GET /ready", readiness(cfg.Corpus, logger))
	topMux.Handle("/", final)

	return &Server{mux: topMux}, nil
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}
