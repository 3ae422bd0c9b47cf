package notifier

type EventType string

const (
	EventNewMessage          EventType = "new_message"
	EventMessageRead         EventType = "message_read"
	EventMessageDeleted      EventType = "message_deleted"
	EventConversationDeleted EventType = "conversation_deleted"
)

// Event is an opaque envelope from the hub's point of view. Payloads
// always carry the definitive record identifiers: delivery is
// at-least-once, so consumers key their state by id and treat a repeat as
// a no-op.
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload"`
}
