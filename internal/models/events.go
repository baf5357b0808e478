package models

import "time"

// Event types
const (
	EventTypeOrderCompleted      = "ORDER_COMPLETED"
	EventTypeOrderCancelled      = "ORDER_CANCELLED"
	EventTypeMessageSent         = "MESSAGE_SENT"
	EventTypeNotificationCreated = "NOTIFICATION_CREATED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderCompletedEvent published after an order transitions to SENDING
type OrderCompletedEvent struct {
	BaseEvent
	OrderID   string `json:"order_id"`
	ListingID string `json:"listing_id"`
	SellerID  string `json:"seller_id"`
	BuyerID   string `json:"buyer_id"`
	Price     int64  `json:"price"`
}

// OrderCancelledEvent published after an order transitions to CANCELLED
type OrderCancelledEvent struct {
	BaseEvent
	OrderID   string `json:"order_id"`
	ListingID string `json:"listing_id"`
	SellerID  string `json:"seller_id"`
	BuyerID   string `json:"buyer_id"`
}

// MessageSentEvent published when a chat message is stored
type MessageSentEvent struct {
	BaseEvent
	MessageID  string    `json:"message_id"`
	SellerID   string    `json:"seller_id"`
	CustomerID string    `json:"customer_id"`
	Body       string    `json:"body"`
	Sender     string    `json:"sender"`
	SentAt     time.Time `json:"sent_at"`
}

// NotificationCreatedEvent published when a buyer notification is stored
type NotificationCreatedEvent struct {
	BaseEvent
	NotificationID string `json:"notification_id"`
	RecipientID    string `json:"recipient_id"`
	ListingID      string `json:"listing_id"`
	Body           string `json:"body"`
}
