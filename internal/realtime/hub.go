package realtime

import (
	"sync"

	"github.com/JLSed/ShoeFreak-Seller/internal/util"
)

// Event is one realtime push: a newly inserted message or notification.
type Event struct {
	ID      string      `json:"id"`
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Handler receives events for one subscriber.
type Handler func(Event)

// Hub fans events out to per-account subscribers. Delivery is
// deduplicated by event id, so a push that races the sender's own
// optimistic append cannot show the same message twice.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[int]*subscription
	nextID      int
}

type subscription struct {
	handler Handler
	seen    map[string]struct{}
	order   []string
}

// Each subscriber remembers this many recent event ids for dedupe.
const seenLimit = 256

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[int]*subscription),
	}
}

// Subscribe registers a handler for one account's events and returns an
// unsubscribe function.
func (h *Hub) Subscribe(accountID string, handler Handler) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID

	subs, ok := h.subscribers[accountID]
	if !ok {
		subs = make(map[int]*subscription)
		h.subscribers[accountID] = subs
	}
	subs[id] = &subscription{
		handler: handler,
		seen:    make(map[string]struct{}),
	}

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if subs, ok := h.subscribers[accountID]; ok {
			delete(subs, id)
			if len(subs) == 0 {
				delete(h.subscribers, accountID)
			}
		}
	}
}

// Publish delivers an event to every live subscriber of an account.
// Events already seen by a subscriber are dropped for that subscriber.
func (h *Hub) Publish(accountID string, event Event) {
	h.mu.Lock()
	var handlers []Handler
	for _, sub := range h.subscribers[accountID] {
		if event.ID != "" {
			if _, dup := sub.seen[event.ID]; dup {
				continue
			}
			sub.remember(event.ID)
		}
		handlers = append(handlers, sub.handler)
	}
	h.mu.Unlock()

	for _, handler := range handlers {
		handler(event)
		util.RealtimeDeliveriesTotal.Inc()
	}
}

// SubscriberCount reports how many live subscriptions an account has
func (h *Hub) SubscriberCount(accountID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[accountID])
}

func (s *subscription) remember(eventID string) {
	if len(s.order) >= seenLimit {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.seen, oldest)
	}
	s.seen[eventID] = struct{}{}
	s.order = append(s.order, eventID)
}
