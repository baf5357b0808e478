package realtime

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishToSubscriber(t *testing.T) {
	hub := NewHub()

	var got []Event
	unsubscribe := hub.Subscribe("acct-1", func(e Event) { got = append(got, e) })
	defer unsubscribe()

	hub.Publish("acct-1", Event{ID: "msg-1", Type: "MESSAGE_SENT"})
	hub.Publish("acct-2", Event{ID: "msg-2", Type: "MESSAGE_SENT"})

	assert.Len(t, got, 1)
	assert.Equal(t, "msg-1", got[0].ID)
}

func TestPublishDedupesByEventID(t *testing.T) {
	hub := NewHub()

	var got []Event
	defer hub.Subscribe("acct-1", func(e Event) { got = append(got, e) })()

	// The same message arriving twice (optimistic append racing the
	// push) is delivered once.
	hub.Publish("acct-1", Event{ID: "msg-1"})
	hub.Publish("acct-1", Event{ID: "msg-1"})
	hub.Publish("acct-1", Event{ID: "msg-2"})

	assert.Len(t, got, 2)
}

func TestDedupeIsPerSubscriber(t *testing.T) {
	hub := NewHub()

	var a, b int
	defer hub.Subscribe("acct-1", func(Event) { a++ })()
	hub.Publish("acct-1", Event{ID: "msg-1"})

	defer hub.Subscribe("acct-1", func(Event) { b++ })()
	hub.Publish("acct-1", Event{ID: "msg-1"})

	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}

func TestUnsubscribe(t *testing.T) {
	hub := NewHub()

	var got int
	unsubscribe := hub.Subscribe("acct-1", func(Event) { got++ })
	assert.Equal(t, 1, hub.SubscriberCount("acct-1"))

	unsubscribe()
	assert.Equal(t, 0, hub.SubscriberCount("acct-1"))

	hub.Publish("acct-1", Event{ID: "msg-1"})
	assert.Equal(t, 0, got)
}

func TestSeenWindowRollsOver(t *testing.T) {
	hub := NewHub()

	var got int
	defer hub.Subscribe("acct-1", func(Event) { got++ })()

	// Push enough distinct events to evict the first id, then replay it.
	for i := 0; i <= seenLimit; i++ {
		hub.Publish("acct-1", Event{ID: fmt.Sprintf("msg-%d", i)})
	}
	hub.Publish("acct-1", Event{ID: "msg-0"})

	assert.Equal(t, seenLimit+2, got)
}

func TestEventsWithoutIDAlwaysDeliver(t *testing.T) {
	hub := NewHub()

	var got int
	defer hub.Subscribe("acct-1", func(Event) { got++ })()

	hub.Publish("acct-1", Event{Type: "PING"})
	hub.Publish("acct-1", Event{Type: "PING"})

	assert.Equal(t, 2, got)
}
