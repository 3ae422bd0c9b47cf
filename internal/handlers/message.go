package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"parley/internal/chat"
	"parley/pkg/errors"
)

type messageResponse struct {
	ID             uuid.UUID      `json:"id"`
	ConversationID uuid.UUID      `json:"conversationId"`
	SenderID       uuid.UUID      `json:"senderId"`
	ReceiverID     uuid.UUID      `json:"receiverId"`
	Content        string         `json:"content"`
	Read           bool           `json:"read"`
	Attachments    []string       `json:"attachments,omitempty"`
	ReplyTo        *replyResponse `json:"replyTo,omitempty"`
	SentAt         time.Time      `json:"sentAt"`
}

type replyResponse struct {
	MessageID  uuid.UUID `json:"messageId"`
	Excerpt    string    `json:"excerpt"`
	SenderName string    `json:"senderName,omitempty"`
}

func toMessageResponse(dto *chat.MessageDTO) messageResponse {
	resp := messageResponse{
		ID:             dto.ID,
		ConversationID: dto.ConversationID,
		SenderID:       dto.SenderID,
		ReceiverID:     dto.ReceiverID,
		Content:        dto.Content,
		Read:           dto.Read,
		Attachments:    dto.Attachments,
		SentAt:         dto.SentAt,
	}
	if dto.ReplyTo != nil {
		resp.ReplyTo = &replyResponse{
			MessageID:  dto.ReplyTo.MessageID,
			Excerpt:    dto.ReplyTo.Excerpt,
			SenderName: dto.ReplyTo.SenderName,
		}
	}
	return resp
}

// SendMessage handles POST /api/messages.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SenderID        uuid.UUID  `json:"senderId"`
		ReceiverID      uuid.UUID  `json:"receiverId"`
		SenderContext   string     `json:"senderContext"`
		ReceiverContext string     `json:"receiverContext"`
		Content         string     `json:"content"`
		Attachments     []string   `json:"attachments"`
		ReplyToID       *uuid.UUID `json:"replyToId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, errors.InvalidArg("invalid request body"))
		return
	}

	// Receiver context defaults to the sender's; cross-context sends
	// must say so explicitly.
	if req.ReceiverContext == "" {
		req.ReceiverContext = req.SenderContext
	}

	dto, err := h.chatUC.SendMessage(r.Context(), chat.SendMessageCommand{
		SenderID:        req.SenderID,
		ReceiverID:      req.ReceiverID,
		SenderContext:   chat.Context(req.SenderContext),
		ReceiverContext: chat.Context(req.ReceiverContext),
		Content:         req.Content,
		Attachments:     req.Attachments,
		ReplyToID:       req.ReplyToID,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, toMessageResponse(dto))
}

// ListMessages handles GET /api/messages.
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
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

	query := chat.ListMessagesQuery{
		UserID:       userID,
		OtherUserID:  otherID,
		Context:      chat.Context(q.Get("context")),
		OtherContext: chat.Context(q.Get("otherContext")),
	}
	if query.OtherContext == "" {
		query.OtherContext = query.Context
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			h.writeError(w, errors.InvalidArg("invalid limit"))
			return
		}
		query.Limit = limit
	}
	if raw := q.Get("before"); raw != "" {
		before, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.writeError(w, errors.InvalidArg("invalid before cursor, want RFC3339"))
			return
		}
		query.Before = before
	}
	query.Descending = q.Get("order") == "desc"

	msgs, err := h.chatUC.ListMessages(r.Context(), query)
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := make([]messageResponse, 0, len(msgs))
	for i := range msgs {
		out = append(out, toMessageResponse(&msgs[i]))
	}
	h.writeJSON(w, http.StatusOK, out)
}

// MarkRead handles POST /api/messages/read.
func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID       uuid.UUID `json:"userId"`
		OtherUserID  uuid.UUID `json:"otherUserId"`
		Context      string    `json:"context"`
		OtherContext string    `json:"otherContext"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, errors.InvalidArg("invalid request body"))
		return
	}
	if req.OtherContext == "" {
		req.OtherContext = req.Context
	}

	err := h.chatUC.MarkRead(r.Context(), chat.MarkReadCommand{
		UserID:       req.UserID,
		OtherUserID:  req.OtherUserID,
		Context:      chat.Context(req.Context),
		OtherContext: chat.Context(req.OtherContext),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusNoContent, nil)
}

// DeleteMessage handles DELETE /api/messages/{id}.
func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	messageID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.writeError(w, errors.InvalidArg("invalid message id"))
		return
	}
	requesterID, err := uuid.Parse(r.URL.Query().Get("requesterId"))
	if err != nil {
		h.writeError(w, errors.InvalidArg("invalid requesterId"))
		return
	}

	if err := h.chatUC.DeleteMessage(r.Context(), messageID, requesterID); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusNoContent, nil)
}
