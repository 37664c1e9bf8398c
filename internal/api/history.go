package api

import (
	"net/http"
	"strconv"

	"github.com/YanguiHadil/unihelp/internal/history"
	"github.com/YanguiHadil/unihelp/internal/log"
)

// historyHandler serves conversation and email history.
type historyHandler struct {
	store  *history.Store
	emails *history.EmailStore
	logger log.Logger
}

// list handles GET /api/v1/history.
func (h *historyHandler) list(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"active":        h.store.ActiveID(),
		"conversations": h.store.Conversations(),
	}, h.logger)
}

// deleteConversation handles DELETE /api/v1/history/{id}.
func (h *historyHandler) deleteConversation(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing_id", "conversation id required", h.logger)
		return
	}
	h.store.DeleteConversation(id)
	writeJSON(w, http.StatusOK, map[string]string{"deleted": id}, h.logger)
}

// clear handles DELETE /api/v1/history.
func (h *historyHandler) clear(w http.ResponseWriter, _ *http.Request) {
	h.store.ClearAll()
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"}, h.logger)
}

// newConversation handles POST /api/v1/conversations.
func (h *historyHandler) newConversation(w http.ResponseWriter, _ *http.Request) {
	id := h.store.StartNewConversation()
	writeJSON(w, http.StatusCreated, map[string]string{"conversation_id": id}, h.logger)
}

// listEmails handles GET /api/v1/emails.
func (h *historyHandler) listEmails(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"emails": h.emails.List()}, h.logger)
}

// deleteEmail handles DELETE /api/v1/emails/{index}.
func (h *historyHandler) deleteEmail(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || index < 0 || index >= h.emails.Len() {
		writeError(w, http.StatusNotFound, "unknown_email", "no email at that index", h.logger)
		return
	}
	h.emails.Delete(index)
	writeJSON(w, http.StatusOK, map[string]int{"deleted": index}, h.logger)
}
