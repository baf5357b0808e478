package store

import (
	"context"

	"github.com/JLSed/ShoeFreak-Seller/internal/models"
	"github.com/jmoiron/sqlx"
)

func insertNotificationTx(ctx context.Context, tx *sqlx.Tx, n *models.Notification) error {
	return tx.GetContext(ctx, &n.CreatedAt,
		`INSERT INTO notifications (notification_id, sender_id, recipient_id, shoe_id, body)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		n.ID, n.SenderID, n.RecipientID, n.ListingID, n.Body)
}

// CreateNotification inserts a standalone notification outside of an
// order transaction.
func (s *Store) CreateNotification(ctx context.Context, n *models.Notification) error {
	return s.db.GetContext(ctx, &n.CreatedAt,
		`INSERT INTO notifications (notification_id, sender_id, recipient_id, shoe_id, body)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		n.ID, n.SenderID, n.RecipientID, n.ListingID, n.Body)
}

// ListNotificationsByRecipient returns a recipient's notifications,
// newest-first.
func (s *Store) ListNotificationsByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error) {
	notifications := []models.Notification{}
	err := s.db.SelectContext(ctx, &notifications,
		"SELECT * FROM notifications WHERE recipient_id = $1 ORDER BY created_at DESC", recipientID)
	return notifications, err
}
