package chat

import (
	"context"

	"github.com/google/uuid"
)

// Profile is the counterpart identity shown in a conversation listing.
type Profile struct {
	UserID      uuid.UUID
	Username    string
	DisplayName string
	AvatarURL   string
}

// UserDirectory resolves display identities per context. A deleted account
// resolves to (nil, nil); the directory read silently omits it.
type UserDirectory interface {
	GetProfile(ctx context.Context, userID uuid.UUID, context Context) (*Profile, error)
}
