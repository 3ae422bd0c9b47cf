package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Username = unique @handle (stable identity)
	Username string `bun:",unique,notnull"`

	CreatedAt time.Time  `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time  `bun:",nullzero,notnull,default:current_timestamp"`
	DeletedAt *time.Time `bun:",soft_delete,nullzero"`
}

// ContextProfile is the display identity a user presents in one context.
// A user holds at most one profile per context.
type ContextProfile struct {
	UserID  uuid.UUID `bun:",pk,type:uuid"`
	Context string    `bun:",pk"`

	DisplayName string `bun:",notnull"`
	AvatarURL   string `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
