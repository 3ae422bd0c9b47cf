package handlers

import (
	"encoding/json"
	"net/http"

	"parley/internal/chat"
	"parley/internal/notifier"
	"parley/pkg/errors"
	"parley/pkg/logger"
)

// Handler is the thin HTTP surface over the chat usecase. Callers are
// identified by explicit ids in the request; authentication sits in front
// of this service.
type Handler struct {
	chatUC chat.Usecase
	hub    *notifier.Hub
	logger *logger.Logger
}

func NewHandler(chatUC chat.Usecase, hub *notifier.Hub, logger *logger.Logger) *Handler {
	return &Handler{
		chatUC: chatUC,
		hub:    hub,
		logger: logger,
	}
}

// Register wires every route onto the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/messages", h.SendMessage)
	mux.HandleFunc("GET /api/messages", h.ListMessages)
	mux.HandleFunc("POST /api/messages/read", h.MarkRead)
	mux.HandleFunc("DELETE /api/messages/{id}", h.DeleteMessage)

	mux.HandleFunc("GET /api/conversations", h.ListConversations)
	mux.HandleFunc("DELETE /api/conversations", h.DeleteConversation)

	mux.HandleFunc("PUT /api/expiry", h.SetExpiry)

	mux.HandleFunc("GET /ws", h.Connect)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", "err", err)
	}
}

// writeError maps the error taxonomy onto HTTP statuses. Internal causes
// stay in the logs; the client sees only the code and message.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	code := errors.CodeOf(err)

	status := http.StatusInternalServerError
	switch code {
	case errors.CodeInvalidArgument, errors.CodeFailedPrecondition:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	case errors.CodePermissionDenied:
		status = http.StatusForbidden
	case errors.CodeUnauthenticated:
		status = http.StatusUnauthorized
	case errors.CodeAlreadyExists:
		status = http.StatusConflict
	case errors.CodeUnavailable:
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError || status == http.StatusServiceUnavailable {
		h.logger.Error("request failed", "err", err, "code", code)
	}

	h.writeJSON(w, status, map[string]string{
		"code":  string(code),
		"error": publicMessage(err, status),
	})
}

func publicMessage(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return "internal error"
	}
	return err.Error()
}
