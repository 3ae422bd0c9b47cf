package chat

import (
	"context"
	"time"

	"github.com/google/uuid"

	"parley/internal/chat/model"
)

// Repository is the storage contract for conversations, messages and
// retention settings. Lookup misses return (nil, nil), not an error: an
// absent conversation just signals the create path.
type Repository interface {
	// GetOrCreateConversation is safe under concurrent calls for the same
	// key; the race loser receives the winner's row.
	GetOrCreateConversation(ctx context.Context, key ConversationKey) (*model.Conversation, error)
	GetConversation(ctx context.Context, id uuid.UUID) (*model.Conversation, error)
	GetConversationByKey(ctx context.Context, key ConversationKey) (*model.Conversation, error)
	TouchConversation(ctx context.Context, id uuid.UUID) error
	// ListConversations returns conversations where userID participates
	// with the given context on their side, updated_at descending.
	ListConversations(ctx context.Context, userID uuid.UUID, context Context) ([]model.Conversation, error)
	// ListConversationsForPair returns every context pairing between two
	// users, regardless of argument order.
	ListConversationsForPair(ctx context.Context, userA, userB uuid.UUID) ([]model.Conversation, error)
	DeleteConversation(ctx context.Context, id uuid.UUID) error

	InsertMessage(ctx context.Context, msg *model.Message) error
	GetMessage(ctx context.Context, id uuid.UUID) (*model.Message, error)
	ListMessages(ctx context.Context, window MessageWindow) ([]model.Message, error)
	// LatestMessages resolves the most recent visible message per
	// conversation in one grouped query.
	LatestMessages(ctx context.Context, conversationIDs []uuid.UUID, viewerID uuid.UUID) (map[uuid.UUID]model.Message, error)
	CountUnread(ctx context.Context, conversationIDs []uuid.UUID, viewerID uuid.UUID) (map[uuid.UUID]int, error)
	// MarkMessagesRead flips read on unread messages addressed to
	// readerID; returns how many rows changed. Idempotent.
	MarkMessagesRead(ctx context.Context, conversationID, readerID uuid.UUID) (int64, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) error
	DeleteConversationMessages(ctx context.Context, conversationID uuid.UUID) (int64, error)

	GetExpirySetting(ctx context.Context, userID uuid.UUID, context Context) (*model.ExpirySetting, error)
	UpsertExpirySetting(ctx context.Context, setting *model.ExpirySetting) error
	// HideExpiredMessages hides messages older than cutoff on userID's
	// side of conversations matching their context. Idempotent
	// range-update, safe to run redundantly from concurrent readers.
	HideExpiredMessages(ctx context.Context, userID uuid.UUID, context Context, cutoff time.Time) (int64, error)
	// PurgeHiddenMessages hard-deletes rows hidden for both viewers.
	PurgeHiddenMessages(ctx context.Context) (int64, error)
}
