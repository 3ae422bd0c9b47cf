package chat

import (
	"context"

	"github.com/google/uuid"
)

type Usecase interface {
	// SendMessage encrypts and persists a message, lazily creating the
	// conversation for the context pairing, and fans out a new_message
	// event to both participants. The returned DTO carries plaintext.
	SendMessage(ctx context.Context, cmd SendMessageCommand) (*MessageDTO, error)

	// ListMessages enforces the caller's retention policy, then returns a
	// decrypted window of the conversation. Messages whose ciphertext can
	// no longer be recovered come back with a sentinel body.
	ListMessages(ctx context.Context, query ListMessagesQuery) ([]MessageDTO, error)

	MarkRead(ctx context.Context, cmd MarkReadCommand) error

	// DeleteMessage removes a single message; only its sender may do so.
	DeleteMessage(ctx context.Context, messageID, requesterID uuid.UUID) error

	// DeleteConversation removes the pair's conversation in the given
	// context pairing, messages first. A nil context deletes across all
	// context pairings for the pair.
	DeleteConversation(ctx context.Context, userID, otherUserID uuid.UUID, context *Context) error

	// ListConversations builds the caller's directory for one context:
	// counterpart profile, latest message, unread count, newest first.
	ListConversations(ctx context.Context, userID uuid.UUID, context Context) ([]ConversationSummaryDTO, error)

	SetExpiry(ctx context.Context, userID uuid.UUID, context Context, enabled bool, days int) error
}
