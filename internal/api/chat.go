package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/YanguiHadil/unihelp/internal/chat"
	"github.com/YanguiHadil/unihelp/internal/i18n"
	"github.com/YanguiHadil/unihelp/internal/log"
	"github.com/YanguiHadil/unihelp/internal/session"
)

// maxRequestBody caps request bodies well above the question length
// limit, leaving room for JSON overhead.
const maxRequestBody = 16 << 10

// chatHandler serves the ask and email endpoints.
type chatHandler struct {
	assistant *chat.Assistant
	sessions  *session.Manager
	language  string
	logger    log.Logger
}

type askRequest struct {
	Question  string `json:"question"`
	Lang      string `json:"lang"`
	SessionID string `json:"session_id"`
}

type askResponse struct {
	Answer    string `json:"answer"`
	Origin    string `json:"origin"`
	SessionID string `json:"session_id"`
}

// ask handles POST /api/v1/ask.
func (h *chatHandler) ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if !h.decode(w, r, &req) {
		return
	}
	lang := h.normalizeLang(req.Lang)
	sess := h.sessions.Get(req.SessionID)

	reply, err := h.assistant.Answer(r.Context(), sess.ID, lang, req.Question)
	h.setQuotaHeader(w, sess.ID)
	if err != nil {
		h.writeChatError(w, lang, err)
		return
	}

	writeJSON(w, http.StatusOK, askResponse{
		Answer:    reply.Text,
		Origin:    reply.Origin,
		SessionID: sess.ID,
	}, h.logger)
}

type emailRequest struct {
	Type      string `json:"type"`
	Lang      string `json:"lang"`
	Details   string `json:"details"`
	SessionID string `json:"session_id"`
}

type emailResponse struct {
	Email     string `json:"email"`
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
}

// email handles POST /api/v1/email.
func (h *chatHandler) email(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if !h.decode(w, r, &req) {
		return
	}
	lang := h.normalizeLang(req.Lang)
	sess := h.sessions.Get(req.SessionID)

	draft, err := h.assistant.GenerateEmail(r.Context(), sess.ID, lang, req.Type, req.Details)
	h.setQuotaHeader(w, sess.ID)
	if err != nil {
		h.writeChatError(w, lang, err)
		return
	}

	writeJSON(w, http.StatusOK, emailResponse{
		Email:     draft,
		Type:      req.Type,
		SessionID: sess.ID,
	}, h.logger)
}

// languages handles GET /api/v1/languages.
func (h *chatHandler) languages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"languages": i18n.Languages(),
		"default":   h.language,
	}, h.logger)
}

// emailTypes handles GET /api/v1/email/types.
func (h *chatHandler) emailTypes(w http.ResponseWriter, r *http.Request) {
	lang := h.normalizeLang(r.URL.Query().Get("lang"))

	types := make([]map[string]string, 0, len(chat.EmailTypes()))
	for _, code := range chat.EmailTypes() {
		types = append(types, map[string]string{
			"code":  code,
			"label": chat.EmailTypeLabel(lang, code),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"types": types}, h.logger)
}

func (h *chatHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body", h.logger)
		return false
	}
	return true
}

// setQuotaHeader advertises the per-session quota left in the current
// rate window, so clients can pace themselves before hitting a 429.
func (h *chatHandler) setQuotaHeader(w http.ResponseWriter, sessionID string) {
	if remaining := h.assistant.RemainingQuota(sessionID); remaining >= 0 {
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
	}
}

func (h *chatHandler) normalizeLang(lang string) string {
	if lang == "" {
		lang = h.language
	}
	return i18n.Normalize(lang)
}

// writeChatError maps assistant errors to HTTP status codes with a
// localized message.
func (h *chatHandler) writeChatError(w http.ResponseWriter, lang string, err error) {
	switch {
	case errors.Is(err, chat.ErrQuestionEmpty):
		writeError(w, http.StatusBadRequest, "empty_question", i18n.T(lang, "error.no_question"), h.logger)
	case errors.Is(err, chat.ErrInvalidQuestion):
		writeError(w, http.StatusBadRequest, "invalid_question", i18n.T(lang, "error.invalid"), h.logger)
	case errors.Is(err, chat.ErrUnknownEmailType):
		writeError(w, http.StatusBadRequest, "unknown_email_type", err.Error(), h.logger)
	case errors.Is(err, chat.ErrRateLimited):
		w.Header().Set("Retry-After", "60")
		writeError(w, http.StatusTooManyRequests, "rate_limited", i18n.T(lang, "rate.limit"), h.logger)
	case errors.Is(err, chat.ErrNoDocuments):
		writeError(w, http.StatusServiceUnavailable, "no_documents", i18n.T(lang, "error.docs"), h.logger)
	default:
		h.logger.Error("chat request failed", "error", err)
		writeError(w, http.StatusBadGateway, "backend_error", i18n.T(lang, "error.backend"), h.logger)
	}
}
