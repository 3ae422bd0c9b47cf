package chat

import (
	"time"

	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type SendMessageCommand struct {
	SenderID        uuid.UUID
	ReceiverID      uuid.UUID
	SenderContext   Context
	ReceiverContext Context
	Content         string
	Attachments     []string
	ReplyToID       *uuid.UUID
}

type ListMessagesQuery struct {
	UserID       uuid.UUID
	OtherUserID  uuid.UUID
	Context      Context
	OtherContext Context
	Limit        int
	Before       time.Time // zero means no cursor
	Descending   bool      // most-recent-N; default is chat-display order
}

type MarkReadCommand struct {
	UserID       uuid.UUID
	OtherUserID  uuid.UUID
	Context      Context
	OtherContext Context
}

// MessageWindow is the repository-level page descriptor for a single
// conversation, always scoped to one viewer so retention hides apply.
type MessageWindow struct {
	ConversationID uuid.UUID
	ViewerID       uuid.UUID
	Limit          int
	Before         time.Time
	Ascending      bool
}

// Output DTOs
type ReplyRefDTO struct {
	MessageID  uuid.UUID
	Excerpt    string
	SenderName string
}

type MessageDTO struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	SenderID       uuid.UUID
	ReceiverID     uuid.UUID
	Content        string
	Read           bool
	Attachments    []string
	ReplyTo        *ReplyRefDTO
	SentAt         time.Time
}

type ConversationSummaryDTO struct {
	ConversationID  uuid.UUID
	Signature       string
	CounterpartID   uuid.UUID
	CounterpartName string
	CounterpartAvatar string
	// LatestMessage is nil once retention emptied the conversation.
	LatestMessage *MessageDTO
	UnreadCount   int
	UpdatedAt     time.Time
}
