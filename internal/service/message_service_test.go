package service

import (
	"context"
	"errors"
	"testing"

	"github.com/JLSed/ShoeFreak-Seller/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessageStore struct {
	messages []models.Message
}

func (f *fakeMessageStore) CreateMessage(_ context.Context, msg *models.Message) error {
	f.messages = append(f.messages, *msg)
	return nil
}

func (f *fakeMessageStore) ListMessages(_ context.Context, sellerID, customerID string) ([]models.Message, error) {
	var out []models.Message
	for _, m := range f.messages {
		if m.SellerID == sellerID && m.CustomerID == customerID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMessageStore) ListConversationPartners(_ context.Context, sellerID string) ([]models.Account, error) {
	seen := make(map[string]bool)
	var out []models.Account
	for _, m := range f.messages {
		if m.SellerID == sellerID && !seen[m.CustomerID] {
			seen[m.CustomerID] = true
			out = append(out, models.Account{ID: m.CustomerID, Role: models.RoleCustomer})
		}
	}
	return out, nil
}

type fakeNotifications struct {
	rows []models.Notification
}

func (f *fakeNotifications) ListNotificationsByRecipient(_ context.Context, recipientID string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range f.rows {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	return out, nil
}

type fakeMessageEvents struct {
	published []*models.MessageSentEvent
	err       error
}

func (f *fakeMessageEvents) PublishMessageSent(_ context.Context, e *models.MessageSentEvent) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, e)
	return nil
}

func TestSendMessage(t *testing.T) {
	store := &fakeMessageStore{}
	events := &fakeMessageEvents{}
	svc := NewMessageService(store, &fakeNotifications{}, events)

	msg, err := svc.Send(context.Background(), "seller-1", "cust-1", "still available?", models.SenderCustomer)
	require.NoError(t, err)

	assert.Equal(t, "still available?", msg.Body)
	require.Len(t, events.published, 1)
	assert.Equal(t, msg.ID, events.published[0].MessageID)

	thread, err := svc.ListConversation(context.Background(), "seller-1", "cust-1")
	require.NoError(t, err)
	assert.Len(t, thread, 1)
}

func TestSendMessageValidation(t *testing.T) {
	svc := NewMessageService(&fakeMessageStore{}, &fakeNotifications{}, &fakeMessageEvents{})

	_, err := svc.Send(context.Background(), "seller-1", "cust-1", "   ", models.SenderSeller)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Send(context.Background(), "seller-1", "cust-1", "hi", "ADMIN")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSendSurvivesPublishFailure(t *testing.T) {
	store := &fakeMessageStore{}
	events := &fakeMessageEvents{err: errors.New("broker down")}
	svc := NewMessageService(store, &fakeNotifications{}, events)

	msg, err := svc.Send(context.Background(), "seller-1", "cust-1", "hello", models.SenderSeller)
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.Len(t, store.messages, 1)
}

func TestListPartners(t *testing.T) {
	store := &fakeMessageStore{}
	svc := NewMessageService(store, &fakeNotifications{}, &fakeMessageEvents{})

	for _, cust := range []string{"cust-1", "cust-1", "cust-2"} {
		_, err := svc.Send(context.Background(), "seller-1", cust, "hi", models.SenderSeller)
		require.NoError(t, err)
	}

	partners, err := svc.ListPartners(context.Background(), "seller-1")
	require.NoError(t, err)
	assert.Len(t, partners, 2)
}
