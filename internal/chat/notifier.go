package chat

import (
	"github.com/google/uuid"

	"parley/internal/notifier"
)

// Notifier fans events out to the live subscriptions of the target users.
// Fire-and-forget: delivery failures never fail the surrounding operation.
type Notifier interface {
	Publish(event notifier.Event, targets ...uuid.UUID)
}
