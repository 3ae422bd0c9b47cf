package model

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID             uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	ConversationID uuid.UUID `bun:",notnull,type:uuid"`

	SenderID   uuid.UUID `bun:",notnull,type:uuid"`
	ReceiverID uuid.UUID `bun:",notnull,type:uuid"`

	// Content is encrypted at the usecase boundary; plaintext never
	// touches the database.
	Ciphertext []byte `bun:",notnull"`
	KeyVersion int    `bun:",notnull"`

	Read bool `bun:",notnull,default:false"`

	Attachments []string `bun:",array"`

	// Reply snapshot captured at send time, not live-joined, so a reply
	// keeps rendering after the referenced message is deleted or expires.
	ReplyToID       *uuid.UUID `bun:",type:uuid,nullzero"`
	ReplyExcerpt    string     `bun:",nullzero"`
	ReplySenderName string     `bun:",nullzero"`

	// Retention hides are per viewer: one party's expiry policy never
	// removes the exchange from the other party's readable set. Rows
	// hidden for both viewers get physically purged.
	HiddenForSender   bool `bun:",notnull,default:false"`
	HiddenForReceiver bool `bun:",notnull,default:false"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// VisibleTo reports whether viewer can still read the message under the
// retention hides.
func (m *Message) VisibleTo(viewer uuid.UUID) bool {
	switch viewer {
	case m.SenderID:
		return !m.HiddenForSender
	case m.ReceiverID:
		return !m.HiddenForReceiver
	}
	return false
}
