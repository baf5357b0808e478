package worker

import (
	"context"
	"testing"

	"github.com/JLSed/ShoeFreak-Seller/internal/models"
	"github.com/JLSed/ShoeFreak-Seller/internal/realtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleMessageSentFansOutToBothSides(t *testing.T) {
	hub := realtime.NewHub()
	w := &RealtimeWorker{hub: hub}

	var seller, customer []realtime.Event
	defer hub.Subscribe("seller-1", func(e realtime.Event) { seller = append(seller, e) })()
	defer hub.Subscribe("cust-1", func(e realtime.Event) { customer = append(customer, e) })()

	err := w.handleMessageSent(context.Background(), &models.MessageSentEvent{
		MessageID:  "msg-1",
		SellerID:   "seller-1",
		CustomerID: "cust-1",
		Body:       "hello",
	})
	require.NoError(t, err)

	require.Len(t, seller, 1)
	require.Len(t, customer, 1)
	assert.Equal(t, "msg-1", seller[0].ID)
	assert.Equal(t, models.EventTypeMessageSent, seller[0].Type)

	// Redelivery of the same message id is dropped by the hub.
	err = w.handleMessageSent(context.Background(), &models.MessageSentEvent{
		MessageID:  "msg-1",
		SellerID:   "seller-1",
		CustomerID: "cust-1",
	})
	require.NoError(t, err)
	assert.Len(t, seller, 1)
	assert.Len(t, customer, 1)
}

func TestHandleNotificationCreated(t *testing.T) {
	hub := realtime.NewHub()
	w := &RealtimeWorker{hub: hub}

	var got []realtime.Event
	defer hub.Subscribe("buyer-1", func(e realtime.Event) { got = append(got, e) })()

	err := w.handleNotificationCreated(context.Background(), &models.NotificationCreatedEvent{
		BaseEvent:   models.BaseEvent{EventID: "evt-1"},
		RecipientID: "buyer-1",
		Body:        "Your order is on the way",
	})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "evt-1", got[0].ID)
	assert.Equal(t, models.EventTypeNotificationCreated, got[0].Type)
}
