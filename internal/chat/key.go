package chat

import (
	"bytes"

	"github.com/google/uuid"

	"parley/pkg/errors"
)

// Context is one of the independent personas a user can present.
// Conversations are scoped per context pairing, not per user pair.
type Context string

const (
	ContextBasic    Context = "basic"
	ContextLove     Context = "love"
	ContextBusiness Context = "business"
)

func (c Context) Valid() bool {
	switch c {
	case ContextBasic, ContextLove, ContextBusiness:
		return true
	}
	return false
}

// ConversationKey is the canonical identity of a two-party conversation.
// The pair is sorted by uuid byte order, and each side's context travels
// with its participant, so both parties derive an identical key no matter
// who asks. Without the sort, two first-senders would silently create two
// divergent conversations for the same pair.
type ConversationKey struct {
	UserLow    uuid.UUID
	UserHigh   uuid.UUID
	ContextLow Context
	ContextHigh Context
}

// ResolveKey derives the ConversationKey for a pair of users and their
// active contexts. Pure; the only failures are invalid inputs.
func ResolveKey(userA uuid.UUID, ctxA Context, userB uuid.UUID, ctxB Context) (ConversationKey, error) {
	if userA == uuid.Nil || userB == uuid.Nil {
		return ConversationKey{}, errors.ErrInvalidParticipant
	}
	if userA == userB {
		return ConversationKey{}, errors.ErrSelfMessage
	}
	if !ctxA.Valid() || !ctxB.Valid() {
		return ConversationKey{}, errors.ErrInvalidContext
	}

	if bytes.Compare(userA[:], userB[:]) < 0 {
		return ConversationKey{UserLow: userA, UserHigh: userB, ContextLow: ctxA, ContextHigh: ctxB}, nil
	}
	return ConversationKey{UserLow: userB, UserHigh: userA, ContextLow: ctxB, ContextHigh: ctxA}, nil
}

// Signature joins the two contexts in sorted-participant order. The
// separator is not a valid character in a context name, so mixed pairings
// like love_business and business_love stay distinguishable.
func (k ConversationKey) Signature() string {
	return string(k.ContextLow) + "_" + string(k.ContextHigh)
}

// ContextOf returns the context on userID's side of the key.
func (k ConversationKey) ContextOf(userID uuid.UUID) (Context, bool) {
	switch userID {
	case k.UserLow:
		return k.ContextLow, true
	case k.UserHigh:
		return k.ContextHigh, true
	}
	return "", false
}
