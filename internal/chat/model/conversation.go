package model

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Participant pair sorted by uuid byte order; lookup is symmetric
	// regardless of which party initiates.
	UserLow  uuid.UUID `bun:",notnull,type:uuid,unique:conv_pair_signature"`
	UserHigh uuid.UUID `bun:",notnull,type:uuid,unique:conv_pair_signature"`

	// Each side's context stored redundantly so nothing has to decode
	// the signature string to learn who is in which context.
	ContextLow  string `bun:",notnull"`
	ContextHigh string `bun:",notnull"`

	// Derived from (context_low, context_high); part of the uniqueness
	// constraint that makes concurrent first-contact races safe.
	Signature string `bun:",notnull,unique:conv_pair_signature"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
