package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"parley/internal/chat"
	"parley/pkg/errors"
)

type conversationResponse struct {
	ConversationID    uuid.UUID        `json:"conversationId"`
	Signature         string           `json:"signature"`
	CounterpartID     uuid.UUID        `json:"counterpartId"`
	CounterpartName   string           `json:"counterpartName"`
	CounterpartAvatar string           `json:"counterpartAvatar,omitempty"`
	LatestMessage     *messageResponse `json:"latestMessage,omitempty"`
	UnreadCount       int              `json:"unreadCount"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

// ListConversations handles GET /api/conversations.
func (h *Handler) ListConversations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	userID, err := uuid.Parse(q.Get("userId"))
	if err != nil {
		h.writeError(w, errors.InvalidArg("invalid userId"))
		return
	}

	summaries, err := h.chatUC.ListConversations(r.Context(), userID, chat.Context(q.Get("context")))
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := make([]conversationResponse, 0, len(summaries))
	for _, s := range summaries {
		resp := conversationResponse{
			ConversationID:    s.ConversationID,
			Signature:         s.Signature,
			CounterpartID:     s.CounterpartID,
			CounterpartName:   s.CounterpartName,
			CounterpartAvatar: s.CounterpartAvatar,
			UnreadCount:       s.UnreadCount,
			UpdatedAt:         s.UpdatedAt,
		}
		if s.LatestMessage != nil {
			msg := toMessageResponse(s.LatestMessage)
			resp.LatestMessage = &msg
		}
		out = append(out, resp)
	}
	h.writeJSON(w, http.StatusOK, out)
}

// DeleteConversation handles DELETE /api/conversations. Without a context
// parameter every conversation with the counterpart goes, across contexts.
func (h *Handler) DeleteConversation(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	userID, err := uuid.Parse(q.Get("userId"))
	if err != nil {
		h.writeError(w, errors.InvalidArg("invalid userId"))
		return
	}
	otherID, err := uuid.Parse(q.Get("otherUserId"))
	if err != nil {
		h.writeError(w, errors.InvalidArg("invalid otherUserId"))
		return
	}

	var scope *chat.Context
	if raw := q.Get("context"); raw != "" {
		c := chat.Context(raw)
		scope = &c
	}

	if err := h.chatUC.DeleteConversation(r.Context(), userID, otherID, scope); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusNoContent, nil)
}

// SetExpiry handles PUT /api/expiry.
func (h *Handler) SetExpiry(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID  uuid.UUID `json:"userId"`
		Context string    `json:"context"`
		Enabled bool      `json:"enabled"`
		Days    int       `json:"days"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, errors.InvalidArg("invalid request body"))
		return
	}

	err := h.chatUC.SetExpiry(r.Context(), req.UserID, chat.Context(req.Context), req.Enabled, req.Days)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusNoContent, nil)
}
