package repository

import (
	"bytes"
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"parley/internal/chat"
	"parley/internal/chat/model"
	"parley/pkg/logger"
)

type ChatRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewChatRepository(db *bun.DB, logger logger.Logger) *ChatRepository {
	return &ChatRepository{
		db:     db,
		logger: &logger,
	}
}

// GetOrCreateConversation inserts the conversation for the key if absent.
// The insert races against concurrent first-senders; ON CONFLICT DO
// NOTHING plus a reselect means the race loser receives the winner's row
// instead of an error.
func (r *ChatRepository) GetOrCreateConversation(ctx context.Context, key chat.ConversationKey) (*model.Conversation, error) {

	conv := &model.Conversation{
		UserLow:     key.UserLow,
		UserHigh:    key.UserHigh,
		ContextLow:  string(key.ContextLow),
		ContextHigh: string(key.ContextHigh),
		Signature:   key.Signature(),
	}

	_, err := r.db.NewInsert().
		Model(conv).
		On("CONFLICT (user_low, user_high, signature) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.GetOrCreateConversation.Insert: ")
	}

	found, err := r.GetConversationByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if found == nil {
		// Row vanished between insert and reselect; only a concurrent
		// explicit delete can do that.
		return nil, errors.New("chatRepo.GetOrCreateConversation: conversation disappeared after upsert")
	}
	return found, nil
}

func (r *ChatRepository) GetConversation(ctx context.Context, id uuid.UUID) (*model.Conversation, error) {

	conv := new(model.Conversation)
	err := r.db.NewSelect().Model(conv).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "chatRepo.GetConversation.Scan: ")
	}
	return conv, nil
}

func (r *ChatRepository) GetConversationByKey(ctx context.Context, key chat.ConversationKey) (*model.Conversation, error) {

	conv := new(model.Conversation)
	err := r.db.NewSelect().
		Model(conv).
		Where("user_low = ? AND user_high = ? AND signature = ?", key.UserLow, key.UserHigh, key.Signature()).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "chatRepo.GetConversationByKey.Scan: ")
	}
	return conv, nil
}

func (r *ChatRepository) TouchConversation(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model((*model.Conversation)(nil)).
		Set("updated_at = current_timestamp").
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.TouchConversation.Update: ")
	}
	return nil
}

func (r *ChatRepository) ListConversations(ctx context.Context, userID uuid.UUID, context chat.Context) ([]model.Conversation, error) {

	var convs []model.Conversation
	err := r.db.NewSelect().
		Model(&convs).
		Where("(user_low = ? AND context_low = ?) OR (user_high = ? AND context_high = ?)",
			userID, string(context), userID, string(context)).
		Order("updated_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListConversations.Scan: ")
	}
	return convs, nil
}

func (r *ChatRepository) ListConversationsForPair(ctx context.Context, userA, userB uuid.UUID) ([]model.Conversation, error) {

	low, high := userA, userB
	if bytes.Compare(high[:], low[:]) < 0 {
		low, high = high, low
	}

	var convs []model.Conversation
	err := r.db.NewSelect().
		Model(&convs).
		Where("user_low = ? AND user_high = ?", low, high).
		Order("updated_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListConversationsForPair.Scan: ")
	}
	return convs, nil
}

func (r *ChatRepository) DeleteConversation(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.NewDelete().
		Model((*model.Conversation)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.DeleteConversation.Exec: ")
	}
	return nil
}

func (r *ChatRepository) InsertMessage(ctx context.Context, msg *model.Message) error {

	_, err := r.db.NewInsert().Model(msg).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.InsertMessage.Exec: ")
	}
	return nil
}

func (r *ChatRepository) GetMessage(ctx context.Context, id uuid.UUID) (*model.Message, error) {

	msg := new(model.Message)
	err := r.db.NewSelect().Model(msg).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "chatRepo.GetMessage.Scan: ")
	}
	return msg, nil
}

func (r *ChatRepository) ListMessages(ctx context.Context, window chat.MessageWindow) ([]model.Message, error) {

	var msgs []model.Message
	q := r.db.NewSelect().
		Model(&msgs).
		Where("conversation_id = ?", window.ConversationID).
		Where("(sender_id = ? AND NOT hidden_for_sender) OR (receiver_id = ? AND NOT hidden_for_receiver)",
			window.ViewerID, window.ViewerID)

	if !window.Before.IsZero() {
		q = q.Where("created_at < ?", window.Before)
	}
	if window.Ascending {
		q = q.Order("created_at ASC")
	} else {
		q = q.Order("created_at DESC")
	}
	if window.Limit > 0 {
		q = q.Limit(window.Limit)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListMessages.Scan: ")
	}
	return msgs, nil
}

// LatestMessages fetches the newest visible message per conversation in a
// single grouped query; the directory screen would otherwise issue one
// query per conversation.
func (r *ChatRepository) LatestMessages(ctx context.Context, conversationIDs []uuid.UUID, viewerID uuid.UUID) (map[uuid.UUID]model.Message, error) {

	latest := make(map[uuid.UUID]model.Message, len(conversationIDs))
	if len(conversationIDs) == 0 {
		return latest, nil
	}

	var msgs []model.Message
	err := r.db.NewSelect().
		Model(&msgs).
		DistinctOn("conversation_id").
		Where("conversation_id IN (?)", bun.In(conversationIDs)).
		Where("(sender_id = ? AND NOT hidden_for_sender) OR (receiver_id = ? AND NOT hidden_for_receiver)",
			viewerID, viewerID).
		OrderExpr("conversation_id, created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.LatestMessages.Scan: ")
	}

	for _, msg := range msgs {
		latest[msg.ConversationID] = msg
	}
	return latest, nil
}

func (r *ChatRepository) CountUnread(ctx context.Context, conversationIDs []uuid.UUID, viewerID uuid.UUID) (map[uuid.UUID]int, error) {

	counts := make(map[uuid.UUID]int, len(conversationIDs))
	if len(conversationIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		ConversationID uuid.UUID `bun:"conversation_id"`
		Unread         int       `bun:"unread"`
	}
	err := r.db.NewSelect().
		Model((*model.Message)(nil)).
		Column("conversation_id").
		ColumnExpr("count(*) AS unread").
		Where("conversation_id IN (?)", bun.In(conversationIDs)).
		Where("receiver_id = ? AND read = FALSE AND NOT hidden_for_receiver", viewerID).
		Group("conversation_id").
		Scan(ctx, &rows)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.CountUnread.Scan: ")
	}

	for _, row := range rows {
		counts[row.ConversationID] = row.Unread
	}
	return counts, nil
}

func (r *ChatRepository) MarkMessagesRead(ctx context.Context, conversationID, readerID uuid.UUID) (int64, error) {

	res, err := r.db.NewUpdate().
		Model((*model.Message)(nil)).
		Set("read = TRUE").
		Where("conversation_id = ? AND receiver_id = ? AND read = FALSE", conversationID, readerID).
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "chatRepo.MarkMessagesRead.Update: ")
	}
	return res.RowsAffected()
}

func (r *ChatRepository) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.NewDelete().
		Model((*model.Message)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.DeleteMessage.Exec: ")
	}
	return nil
}

func (r *ChatRepository) DeleteConversationMessages(ctx context.Context, conversationID uuid.UUID) (int64, error) {

	res, err := r.db.NewDelete().
		Model((*model.Message)(nil)).
		Where("conversation_id = ?", conversationID).
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "chatRepo.DeleteConversationMessages.Exec: ")
	}
	return res.RowsAffected()
}

func (r *ChatRepository) GetExpirySetting(ctx context.Context, userID uuid.UUID, context chat.Context) (*model.ExpirySetting, error) {

	setting := new(model.ExpirySetting)
	err := r.db.NewSelect().
		Model(setting).
		Where("user_id = ? AND context = ?", userID, string(context)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "chatRepo.GetExpirySetting.Scan: ")
	}
	return setting, nil
}

func (r *ChatRepository) UpsertExpirySetting(ctx context.Context, setting *model.ExpirySetting) error {

	setting.UpdatedAt = time.Now().UTC()

	_, err := r.db.NewInsert().
		Model(setting).
		On("CONFLICT (user_id, context) DO UPDATE").
		Set("enabled = EXCLUDED.enabled").
		Set("days = EXCLUDED.days").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.UpsertExpirySetting.Exec: ")
	}
	return nil
}

// HideExpiredMessages flips the viewer-side hide flag on messages older
// than cutoff in conversations where userID holds the given context.
// Expressed as idempotent range-updates so two simultaneous readers of
// the same conversation can both run it safely.
func (r *ChatRepository) HideExpiredMessages(ctx context.Context, userID uuid.UUID, context chat.Context, cutoff time.Time) (int64, error) {

	matching := r.db.NewSelect().
		Model((*model.Conversation)(nil)).
		Column("id").
		Where("(user_low = ? AND context_low = ?) OR (user_high = ? AND context_high = ?)",
			userID, string(context), userID, string(context))

	var hidden int64

	res, err := r.db.NewUpdate().
		Model((*model.Message)(nil)).
		Set("hidden_for_sender = TRUE").
		Where("sender_id = ? AND hidden_for_sender = FALSE", userID).
		Where("created_at < ?", cutoff).
		Where("conversation_id IN (?)", matching).
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "chatRepo.HideExpiredMessages.SenderSide: ")
	}
	if n, err := res.RowsAffected(); err == nil {
		hidden += n
	}

	res, err = r.db.NewUpdate().
		Model((*model.Message)(nil)).
		Set("hidden_for_receiver = TRUE").
		Where("receiver_id = ? AND hidden_for_receiver = FALSE", userID).
		Where("created_at < ?", cutoff).
		Where("conversation_id IN (?)", matching).
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "chatRepo.HideExpiredMessages.ReceiverSide: ")
	}
	if n, err := res.RowsAffected(); err == nil {
		hidden += n
	}

	return hidden, nil
}

func (r *ChatRepository) PurgeHiddenMessages(ctx context.Context) (int64, error) {

	res, err := r.db.NewDelete().
		Model((*model.Message)(nil)).
		Where("hidden_for_sender = TRUE AND hidden_for_receiver = TRUE").
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "chatRepo.PurgeHiddenMessages.Exec: ")
	}
	return res.RowsAffected()
}
