package notifier

import (
	"sync"

	"github.com/google/uuid"

	"parley/pkg/logger"
)

const defaultBufferSize = 64

// Subscription is one live event channel for one user. A user may hold
// several at once (multiple devices or tabs); every open one receives
// that user's events.
type Subscription struct {
	id     uuid.UUID
	userID uuid.UUID
	ch     chan Event

	mu     sync.Mutex
	closed bool
}

// Events is the stream the transport layer drains to the client.
// It is closed on unsubscribe.
func (s *Subscription) Events() <-chan Event { return s.ch }

func (s *Subscription) UserID() uuid.UUID { return s.userID }

// deliver is non-blocking; a full buffer means the consumer is too slow
// and the event is dropped. The client recovers missed state on its next
// read, not via redelivery.
func (s *Subscription) deliver(event Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	select {
	case s.ch <- event:
		return true
	default:
		return false
	}
}

func (s *Subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

// Hub is the per-process registry of live subscriptions. Publish is the
// hot path and only takes the read lock; registration churn takes the
// write lock.
type Hub struct {
	mu     sync.RWMutex
	subs   map[uuid.UUID]map[*Subscription]struct{}
	logger *logger.Logger
	buffer int
}

func NewHub(logger *logger.Logger, bufferSize int) *Hub {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	return &Hub{
		subs:   make(map[uuid.UUID]map[*Subscription]struct{}),
		logger: logger,
		buffer: bufferSize,
	}
}

func (h *Hub) Subscribe(userID uuid.UUID) *Subscription {
	sub := &Subscription{
		id:     uuid.New(),
		userID: userID,
		ch:     make(chan Event, h.buffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[*Subscription]struct{})
	}
	h.subs[userID][sub] = struct{}{}
	return sub
}

// Unsubscribe is idempotent.
func (h *Hub) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	h.mu.Lock()
	if set, ok := h.subs[sub.userID]; ok {
		delete(set, sub)
		if len(set) == 0 {
			delete(h.subs, sub.userID)
		}
	}
	h.mu.Unlock()

	sub.close()
}

// Publish delivers event to every open subscription of the target users.
// Targets with no open subscription are skipped silently; slow consumers
// are dropped rather than blocking the caller.
func (h *Hub) Publish(event Event, targets ...uuid.UUID) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, target := range targets {
		for sub := range h.subs[target] {
			if !sub.deliver(event) {
				h.logger.Warn("dropping event for slow or closed subscriber",
					"user_id", target, "event_type", event.Type)
			}
		}
	}
}

// Close shuts down every subscription, typically on server shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for userID, set := range h.subs {
		for sub := range set {
			sub.close()
		}
		delete(h.subs, userID)
	}
}
