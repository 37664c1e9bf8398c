package api

import (
	"net/http"

	"github.com/YanguiHadil/unihelp/internal/corpus"
	"github.com/YanguiHadil/unihelp/internal/log"
)

// health is a liveness probe.
func health(logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
	}
}

// readiness reports ready only when the document corpus is loaded,
// since every answer is grounded in it.
func readiness(provider *corpus.Provider, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		docs := provider.Corpus()
		if docs.Empty() {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"status": "not_ready",
				"reason": "no documents loaded",
			}, logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status":   "ready",
			"sections": len(docs.Sections),
		}, logger)
	}
}
