package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/JLSed/ShoeFreak-Seller/internal/models"
	"github.com/JLSed/ShoeFreak-Seller/internal/util"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MessageService handles seller-customer chat. Stored messages are
// mirrored onto the event stream; the realtime worker pushes them to
// open chat views.
type MessageService struct {
	messages      MessageStore
	notifications NotificationStore
	events        MessageEvents
	logger        *zap.Logger
}

// NewMessageService creates a new message service
func NewMessageService(messages MessageStore, notifications NotificationStore, events MessageEvents) *MessageService {
	return &MessageService{
		messages:      messages,
		notifications: notifications,
		events:        events,
		logger:        util.GetLogger(),
	}
}

// ListPartners returns the customers the seller has a thread with
func (s *MessageService) ListPartners(ctx context.Context, sellerID string) ([]models.Account, error) {
	return s.messages.ListConversationPartners(ctx, sellerID)
}

// ListConversation returns the messages between a seller and a customer
func (s *MessageService) ListConversation(ctx context.Context, sellerID, customerID string) ([]models.Message, error) {
	return s.messages.ListMessages(ctx, sellerID, customerID)
}

// ListNotifications returns the account's notifications newest-first
func (s *MessageService) ListNotifications(ctx context.Context, accountID string) ([]models.Notification, error) {
	return s.notifications.ListNotificationsByRecipient(ctx, accountID)
}

// Send stores a message and publishes its fanout event.
func (s *MessageService) Send(ctx context.Context, sellerID, customerID, body, sender string) (*models.Message, error) {
	ctx, span := util.StartSpan(ctx, "MessageService.Send")
	defer span.End()

	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("message body is required: %w", ErrValidation)
	}
	if sender != models.SenderSeller && sender != models.SenderCustomer {
		return nil, fmt.Errorf("invalid sender %q: %w", sender, ErrValidation)
	}

	msg := &models.Message{
		ID:         uuid.New().String(),
		SellerID:   sellerID,
		CustomerID: customerID,
		Body:       body,
		Sender:     sender,
	}
	if err := s.messages.CreateMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	util.MessagesSentTotal.Inc()

	event := &models.MessageSentEvent{
		BaseEvent:  newBaseEvent(models.EventTypeMessageSent),
		MessageID:  msg.ID,
		SellerID:   msg.SellerID,
		CustomerID: msg.CustomerID,
		Body:       msg.Body,
		Sender:     msg.Sender,
		SentAt:     msg.CreatedAt,
	}
	if err := s.events.PublishMessageSent(ctx, event); err != nil {
		// Message is stored; the receiver just won't get a live push.
		s.logger.Error("Failed to publish MessageSent event",
			zap.String("message_id", msg.ID), zap.Error(err))
	}

	return msg, nil
}
