package usecase

import (
	"context"
	"database/sql/driver"
	stderrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"parley/internal/chat"
	"parley/internal/chat/model"
	"parley/internal/notifier"
	"parley/pkg/crypto"
	"parley/pkg/errors"
	"parley/pkg/logger"
	"parley/pkg/utils"
)

const (
	// Body served when a ciphertext can no longer be recovered. The
	// affected message degrades; the request never fails for it.
	unreadableBody = "[message unavailable]"

	replyExcerptLen    = 120
	defaultWindowLimit = 50
)

type ChatUsecase struct {
	repo      chat.Repository
	directory chat.UserDirectory
	notifier  chat.Notifier
	box       *crypto.Box
	logger    logger.Logger
}

func NewChatUsecase(repo chat.Repository, directory chat.UserDirectory, notif chat.Notifier, box *crypto.Box, logger logger.Logger) *ChatUsecase {
	return &ChatUsecase{
		repo:      repo,
		directory: directory,
		notifier:  notif,
		box:       box,
		logger:    logger,
	}
}

func (uc *ChatUsecase) SendMessage(ctx context.Context, cmd chat.SendMessageCommand) (*chat.MessageDTO, error) {
	if strings.TrimSpace(cmd.Content) == "" {
		return nil, errors.ErrEmptyContent
	}

	key, err := chat.ResolveKey(cmd.SenderID, cmd.SenderContext, cmd.ReceiverID, cmd.ReceiverContext)
	if err != nil {
		return nil, err
	}

	conv, err := uc.repo.GetOrCreateConversation(ctx, key)
	if err != nil {
		uc.logger.Error("failed to get or create conversation", "err", err, "signature", key.Signature())
		return nil, storeError(err, errors.ErrConversationLookupFailed(err))
	}

	msg := &model.Message{
		ConversationID: conv.ID,
		SenderID:       cmd.SenderID,
		ReceiverID:     cmd.ReceiverID,
		Attachments:    cmd.Attachments,
	}

	if cmd.ReplyToID != nil {
		if err := uc.captureReplySnapshot(ctx, conv, key, *cmd.ReplyToID, msg); err != nil {
			return nil, err
		}
	}

	ciphertext, version, err := uc.box.Encrypt([]byte(cmd.Content))
	if err != nil {
		uc.logger.Error("failed to encrypt message content", "err", err)
		return nil, errors.ErrSendFailed(err)
	}
	msg.Ciphertext = ciphertext
	msg.KeyVersion = version

	if err := uc.repo.InsertMessage(ctx, msg); err != nil {
		uc.logger.Error("failed to persist message", "err", err, "conversation_id", conv.ID)
		return nil, storeError(err, errors.ErrSendFailed(err))
	}

	if err := uc.repo.TouchConversation(ctx, conv.ID); err != nil {
		// The message is persisted; a stale updated_at only skews the
		// directory ordering until the next send.
		uc.logger.Warn("failed to touch conversation", "err", err, "conversation_id", conv.ID)
	}

	dto := uc.toDTO(msg, cmd.Content)

	// Publish after persistence, never retried: re-sending on a publish
	// failure would duplicate the message.
	uc.notifier.Publish(notifier.Event{Type: notifier.EventNewMessage, Payload: dto}, cmd.SenderID, cmd.ReceiverID)

	return dto, nil
}

// captureReplySnapshot denormalizes the referenced message into the reply:
// id, a short excerpt and the original sender's display name, frozen at
// send time so the reply keeps rendering after the original is gone.
func (uc *ChatUsecase) captureReplySnapshot(ctx context.Context, conv *model.Conversation, key chat.ConversationKey, replyToID uuid.UUID, msg *model.Message) error {
	target, err := uc.repo.GetMessage(ctx, replyToID)
	if err != nil {
		uc.logger.Error("failed to load reply target", "err", err, "message_id", replyToID)
		return errors.ErrSendFailed(err)
	}
	if target == nil || target.ConversationID != conv.ID || !target.VisibleTo(msg.SenderID) {
		// A target the replier's own retention already hid counts as
		// gone, even though the counterpart may still read it.
		return errors.ErrReplyTargetMissing
	}

	body := uc.decryptBody(target)
	msg.ReplyToID = &target.ID
	msg.ReplyExcerpt = utils.Excerpt(body, replyExcerptLen)

	senderContext, ok := key.ContextOf(target.SenderID)
	if ok {
		profile, err := uc.directory.GetProfile(ctx, target.SenderID, senderContext)
		if err != nil {
			uc.logger.Warn("failed to resolve reply sender profile", "err", err, "user_id", target.SenderID)
		} else if profile != nil {
			msg.ReplySenderName = profile.DisplayName
		}
	}
	return nil
}

func (uc *ChatUsecase) ListMessages(ctx context.Context, query chat.ListMessagesQuery) ([]chat.MessageDTO, error) {
	key, err := chat.ResolveKey(query.UserID, query.Context, query.OtherUserID, query.OtherContext)
	if err != nil {
		return nil, err
	}

	uc.enforceRetention(ctx, query.UserID, query.Context)

	conv, err := uc.repo.GetConversationByKey(ctx, key)
	if err != nil {
		uc.logger.Error("failed to look up conversation", "err", err, "signature", key.Signature())
		return nil, storeError(err, errors.ErrConversationLookupFailed(err))
	}
	if conv == nil {
		return []chat.MessageDTO{}, nil
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultWindowLimit
	}

	msgs, err := uc.repo.ListMessages(ctx, chat.MessageWindow{
		ConversationID: conv.ID,
		ViewerID:       query.UserID,
		Limit:          limit,
		Before:         query.Before,
		Ascending:      !query.Descending,
	})
	if err != nil {
		uc.logger.Error("failed to list messages", "err", err, "conversation_id", conv.ID)
		return nil, errors.Internal("failed to list messages")
	}

	out := make([]chat.MessageDTO, 0, len(msgs))
	for i := range msgs {
		out = append(out, *uc.toDTO(&msgs[i], uc.decryptBody(&msgs[i])))
	}
	return out, nil
}

func (uc *ChatUsecase) MarkRead(ctx context.Context, cmd chat.MarkReadCommand) error {
	key, err := chat.ResolveKey(cmd.UserID, cmd.Context, cmd.OtherUserID, cmd.OtherContext)
	if err != nil {
		return err
	}

	conv, err := uc.repo.GetConversationByKey(ctx, key)
	if err != nil {
		uc.logger.Error("failed to look up conversation", "err", err, "signature", key.Signature())
		return storeError(err, errors.ErrConversationLookupFailed(err))
	}
	if conv == nil {
		// Nothing to acknowledge.
		return nil
	}

	changed, err := uc.repo.MarkMessagesRead(ctx, conv.ID, cmd.UserID)
	if err != nil {
		uc.logger.Error("failed to mark messages read", "err", err, "conversation_id", conv.ID)
		return errors.Internal("failed to mark messages read")
	}

	if changed > 0 {
		payload := chat.MessageReadPayload{ConversationID: conv.ID, ReaderID: cmd.UserID}
		uc.notifier.Publish(notifier.Event{Type: notifier.EventMessageRead, Payload: payload},
			cmd.UserID, cmd.OtherUserID)
	}
	return nil
}

func (uc *ChatUsecase) DeleteMessage(ctx context.Context, messageID, requesterID uuid.UUID) error {
	msg, err := uc.repo.GetMessage(ctx, messageID)
	if err != nil {
		uc.logger.Error("failed to load message", "err", err, "message_id", messageID)
		return errors.Internal("failed to load message")
	}
	if msg == nil {
		return errors.ErrMessageNotFound
	}
	// Caller-side authorization is assumed; the store still re-validates
	// ownership before deleting.
	if msg.SenderID != requesterID {
		return errors.ErrNotMessageOwner
	}

	if err := uc.repo.DeleteMessage(ctx, messageID); err != nil {
		uc.logger.Error("failed to delete message", "err", err, "message_id", messageID)
		return errors.Internal("failed to delete message")
	}

	payload := chat.MessageDeletedPayload{ConversationID: msg.ConversationID, MessageID: msg.ID}
	uc.notifier.Publish(notifier.Event{Type: notifier.EventMessageDeleted, Payload: payload},
		msg.SenderID, msg.ReceiverID)
	return nil
}

func (uc *ChatUsecase) DeleteConversation(ctx context.Context, userID, otherUserID uuid.UUID, context *chat.Context) error {
	if context != nil && !context.Valid() {
		return errors.ErrInvalidContext
	}

	convs, err := uc.repo.ListConversationsForPair(ctx, userID, otherUserID)
	if err != nil {
		uc.logger.Error("failed to list conversations for pair", "err", err)
		return errors.Internal("failed to list conversations")
	}

	var targets []model.Conversation
	for _, conv := range convs {
		if context == nil || sideContext(&conv, userID) == string(*context) {
			targets = append(targets, conv)
		}
	}
	if len(targets) == 0 {
		return errors.ErrConversationNotFound
	}

	for _, conv := range targets {
		// Messages first; a partial failure must never leave a
		// conversation row pointing at nothing.
		if _, err := uc.repo.DeleteConversationMessages(ctx, conv.ID); err != nil {
			uc.logger.Error("failed to delete conversation messages", "err", err, "conversation_id", conv.ID)
			return errors.Internal("failed to delete conversation messages")
		}
		if err := uc.repo.DeleteConversation(ctx, conv.ID); err != nil {
			uc.logger.Error("failed to delete conversation", "err", err, "conversation_id", conv.ID)
			return errors.Internal("failed to delete conversation")
		}

		payload := chat.ConversationDeletedPayload{ConversationID: conv.ID}
		uc.notifier.Publish(notifier.Event{Type: notifier.EventConversationDeleted, Payload: payload},
			conv.UserLow, conv.UserHigh)
	}
	return nil
}

func (uc *ChatUsecase) ListConversations(ctx context.Context, userID uuid.UUID, context chat.Context) ([]chat.ConversationSummaryDTO, error) {
	if !context.Valid() {
		return nil, errors.ErrInvalidContext
	}

	uc.enforceRetention(ctx, userID, context)

	convs, err := uc.repo.ListConversations(ctx, userID, context)
	if err != nil {
		uc.logger.Error("failed to list conversations", "err", err, "user_id", userID)
		return nil, errors.Internal("failed to list conversations")
	}
	if len(convs) == 0 {
		return []chat.ConversationSummaryDTO{}, nil
	}

	ids := make([]uuid.UUID, 0, len(convs))
	for _, conv := range convs {
		ids = append(ids, conv.ID)
	}

	latest, err := uc.repo.LatestMessages(ctx, ids, userID)
	if err != nil {
		uc.logger.Error("failed to batch latest messages", "err", err, "user_id", userID)
		return nil, errors.Internal("failed to list conversations")
	}

	unread, err := uc.repo.CountUnread(ctx, ids, userID)
	if err != nil {
		uc.logger.Error("failed to count unread messages", "err", err, "user_id", userID)
		return nil, errors.Internal("failed to list conversations")
	}

	summaries := make([]chat.ConversationSummaryDTO, 0, len(convs))
	for _, conv := range convs {
		counterpartID, counterpartContext := counterpartOf(&conv, userID)

		profile, err := uc.directory.GetProfile(ctx, counterpartID, chat.Context(counterpartContext))
		if err != nil {
			uc.logger.Error("failed to resolve counterpart profile", "err", err, "user_id", counterpartID)
			return nil, errors.Internal("failed to list conversations")
		}
		if profile == nil {
			// Deleted account: omit, don't error.
			continue
		}

		summary := chat.ConversationSummaryDTO{
			ConversationID:    conv.ID,
			Signature:         conv.Signature,
			CounterpartID:     counterpartID,
			CounterpartName:   profile.DisplayName,
			CounterpartAvatar: profile.AvatarURL,
			UnreadCount:       unread[conv.ID],
			UpdatedAt:         conv.UpdatedAt,
		}
		if msg, ok := latest[conv.ID]; ok {
			summary.LatestMessage = uc.toDTO(&msg, uc.decryptBody(&msg))
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (uc *ChatUsecase) SetExpiry(ctx context.Context, userID uuid.UUID, context chat.Context, enabled bool, days int) error {
	if !context.Valid() {
		return errors.ErrInvalidContext
	}
	if days < 0 {
		return errors.ErrInvalidExpiryDays
	}

	setting := &model.ExpirySetting{
		UserID:  userID,
		Context: string(context),
		Enabled: enabled,
		Days:    days,
	}
	if err := uc.repo.UpsertExpirySetting(ctx, setting); err != nil {
		uc.logger.Error("failed to save expiry setting", "err", err, "user_id", userID)
		return errors.Internal("failed to save expiry setting")
	}
	return nil
}

// enforceRetention applies the user's expiry policy for the context before
// a read is served. Retention is advisory: a failure here degrades to
// serving not-yet-purged history and is logged, never surfaced.
func (uc *ChatUsecase) enforceRetention(ctx context.Context, userID uuid.UUID, context chat.Context) {
	setting, err := uc.repo.GetExpirySetting(ctx, userID, context)
	if err != nil {
		uc.logger.Warn("failed to load expiry setting", "err", err, "user_id", userID)
		return
	}
	if setting == nil || !setting.Enabled {
		return
	}

	cutoff := setting.Cutoff(time.Now().UTC())
	if _, err := uc.repo.HideExpiredMessages(ctx, userID, context, cutoff); err != nil {
		uc.logger.Warn("failed to hide expired messages", "err", err, "user_id", userID)
		return
	}
	if _, err := uc.repo.PurgeHiddenMessages(ctx); err != nil {
		uc.logger.Warn("failed to purge hidden messages", "err", err)
	}
}

// decryptBody recovers a message's plaintext, degrading to the sentinel
// body on failure so one bad ciphertext never aborts a whole listing.
func (uc *ChatUsecase) decryptBody(msg *model.Message) string {
	plaintext, err := uc.box.Decrypt(msg.Ciphertext, msg.KeyVersion)
	if err != nil {
		uc.logger.Error("failed to decrypt message content",
			"err", err, "message_id", msg.ID, "key_version", msg.KeyVersion)
		return unreadableBody
	}
	return string(plaintext)
}

func (uc *ChatUsecase) toDTO(msg *model.Message, content string) *chat.MessageDTO {
	dto := &chat.MessageDTO{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		ReceiverID:     msg.ReceiverID,
		Content:        content,
		Read:           msg.Read,
		Attachments:    msg.Attachments,
		SentAt:         msg.CreatedAt,
	}
	if msg.ReplyToID != nil {
		dto.ReplyTo = &chat.ReplyRefDTO{
			MessageID:  *msg.ReplyToID,
			Excerpt:    msg.ReplyExcerpt,
			SenderName: msg.ReplySenderName,
		}
	}
	return dto
}

// storeError classifies a repository failure: connectivity and deadline
// errors surface as UNAVAILABLE so clients know to retry, anything else
// keeps the operation's own error.
func storeError(err error, fallback error) error {
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, driver.ErrBadConn) {
		return errors.ErrStoreUnavailable(err)
	}
	return fallback
}

func sideContext(conv *model.Conversation, userID uuid.UUID) string {
	if conv.UserLow == userID {
		return conv.ContextLow
	}
	return conv.ContextHigh
}

func counterpartOf(conv *model.Conversation, userID uuid.UUID) (uuid.UUID, string) {
	if conv.UserLow == userID {
		return conv.UserHigh, conv.ContextHigh
	}
	return conv.UserLow, conv.ContextLow
}
