package worker

import (
	"context"
	"log"

	"github.com/JLSed/ShoeFreak-Seller/internal/broker"
	"github.com/JLSed/ShoeFreak-Seller/internal/models"
	"github.com/JLSed/ShoeFreak-Seller/internal/realtime"
)

// RealtimeWorker consumes stored-row events and fans them out to open
// websocket subscriptions. This is the push side of the chat and
// notification views: the database write already happened by the time
// an event reaches this worker.
type RealtimeWorker struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
	hub          *realtime.Hub
}

// NewRealtimeWorker creates a realtime fanout worker
func NewRealtimeWorker(consumer *broker.Consumer, hub *realtime.Hub) *RealtimeWorker {
	w := &RealtimeWorker{
		consumer: consumer,
		hub:      hub,
	}

	eventHandler := broker.NewEventHandler()
	eventHandler.OnMessageSent(w.handleMessageSent)
	eventHandler.OnNotificationCreated(w.handleNotificationCreated)
	w.eventHandler = eventHandler

	return w
}

// Start starts the worker
func (w *RealtimeWorker) Start(ctx context.Context) error {
	log.Println("Starting realtime worker...")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker
func (w *RealtimeWorker) Stop() error {
	log.Println("Stopping realtime worker...")
	return w.consumer.Close()
}

// handleMessageSent pushes a new chat message to both ends of the
// conversation. The hub dedupes by message id, so the sender's own
// optimistic append never doubles up.
func (w *RealtimeWorker) handleMessageSent(_ context.Context, event *models.MessageSentEvent) error {
	push := realtime.Event{
		ID:      event.MessageID,
		Type:    models.EventTypeMessageSent,
		Payload: event,
	}
	w.hub.Publish(event.SellerID, push)
	w.hub.Publish(event.CustomerID, push)
	return nil
}

// handleNotificationCreated pushes an order notification to its buyer.
func (w *RealtimeWorker) handleNotificationCreated(_ context.Context, event *models.NotificationCreatedEvent) error {
	w.hub.Publish(event.RecipientID, realtime.Event{
		ID:      event.EventID,
		Type:    models.EventTypeNotificationCreated,
		Payload: event,
	})
	return nil
}
