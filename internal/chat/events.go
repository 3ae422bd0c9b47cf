package chat

import "github.com/google/uuid"

// Event payloads. Every payload names the definitive record ids so
// at-least-once delivery stays safe to consume: clients key rendering
// state by id and ignore repeats.

type MessageReadPayload struct {
	ConversationID uuid.UUID `json:"conversation_id"`
	ReaderID       uuid.UUID `json:"reader_id"`
}

type MessageDeletedPayload struct {
	ConversationID uuid.UUID `json:"conversation_id"`
	MessageID      uuid.UUID `json:"message_id"`
}

type ConversationDeletedPayload struct {
	ConversationID uuid.UUID `json:"conversation_id"`
}
