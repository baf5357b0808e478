package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/JLSed/ShoeFreak-Seller/internal/models"
	"github.com/segmentio/kafka-go"
)

// EventPublisher handles publishing domain events
type EventPublisher struct {
	producer *Producer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(producer *Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

// PublishOrderCompleted publishes an OrderCompleted event
func (ep *EventPublisher) PublishOrderCompleted(ctx context.Context, event *models.OrderCompletedEvent) error {
	return ep.producer.PublishEvent(ctx, orderKey(event.OrderID), event)
}

// PublishOrderCancelled publishes an OrderCancelled event
func (ep *EventPublisher) PublishOrderCancelled(ctx context.Context, event *models.OrderCancelledEvent) error {
	return ep.producer.PublishEvent(ctx, orderKey(event.OrderID), event)
}

// PublishMessageSent publishes a MessageSent event. Keyed per
// conversation so delivery stays ordered within one chat.
func (ep *EventPublisher) PublishMessageSent(ctx context.Context, event *models.MessageSentEvent) error {
	key := fmt.Sprintf("chat-%s-%s", event.SellerID, event.CustomerID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// PublishNotificationCreated publishes a NotificationCreated event
func (ep *EventPublisher) PublishNotificationCreated(ctx context.Context, event *models.NotificationCreatedEvent) error {
	key := fmt.Sprintf("notify-%s", event.RecipientID)
	return ep.producer.PublishEvent(ctx, key, event)
}

func orderKey(orderID string) string {
	return fmt.Sprintf("order-%s", orderID)
}

// EventHandler routes consumed events to registered callbacks
type EventHandler struct {
	onMessageSent         func(context.Context, *models.MessageSentEvent) error
	onNotificationCreated func(context.Context, *models.NotificationCreatedEvent) error
}

// NewEventHandler creates a new event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// OnMessageSent registers a handler for MessageSent events
func (eh *EventHandler) OnMessageSent(handler func(context.Context, *models.MessageSentEvent) error) {
	eh.onMessageSent = handler
}

// OnNotificationCreated registers a handler for NotificationCreated events
func (eh *EventHandler) OnNotificationCreated(handler func(context.Context, *models.NotificationCreatedEvent) error) {
	eh.onNotificationCreated = handler
}

// HandleMessage routes messages to appropriate handlers
func (eh *EventHandler) HandleMessage(ctx context.Context, msg kafka.Message) error {
	var baseEvent models.BaseEvent
	if err := json.Unmarshal(msg.Value, &baseEvent); err != nil {
		return fmt.Errorf("failed to unmarshal base event: %w", err)
	}

	switch baseEvent.EventType {
	case models.EventTypeMessageSent:
		if eh.onMessageSent != nil {
			var event models.MessageSentEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal MessageSent event: %w", err)
			}
			return eh.onMessageSent(ctx, &event)
		}

	case models.EventTypeNotificationCreated:
		if eh.onNotificationCreated != nil {
			var event models.NotificationCreatedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal NotificationCreated event: %w", err)
			}
			return eh.onNotificationCreated(ctx, &event)
		}

	default:
		log.Printf("Unhandled event type: %s", baseEvent.EventType)
	}

	return nil
}
