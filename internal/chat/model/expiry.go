package model

import (
	"time"

	"github.com/google/uuid"
)

// ExpirySetting is a per-user, per-context retention policy. It is read
// before any message list touching that user in that context is served.
type ExpirySetting struct {
	UserID  uuid.UUID `bun:",pk,type:uuid"`
	Context string    `bun:",pk"`

	Enabled bool `bun:",notnull,default:false"`
	Days    int  `bun:",notnull,default:0"`

	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// Cutoff returns the oldest creation instant still retained as of now.
func (s *ExpirySetting) Cutoff(now time.Time) time.Time {
	return now.Add(-time.Duration(s.Days) * 24 * time.Hour)
}
