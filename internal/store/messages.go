package store

import (
	"context"

	"github.com/JLSed/ShoeFreak-Seller/internal/models"
)

// CreateMessage inserts a chat message
func (s *Store) CreateMessage(ctx context.Context, msg *models.Message) error {
	return s.db.GetContext(ctx, &msg.CreatedAt,
		`INSERT INTO messages (message_id, seller_id, customer_id, body, sender)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		msg.ID, msg.SellerID, msg.CustomerID, msg.Body, msg.Sender)
}

// ListMessages returns the conversation between a seller and a customer,
// oldest-first.
func (s *Store) ListMessages(ctx context.Context, sellerID, customerID string) ([]models.Message, error) {
	messages := []models.Message{}
	err := s.db.SelectContext(ctx, &messages,
		`SELECT * FROM messages
		 WHERE seller_id = $1 AND customer_id = $2
		 ORDER BY created_at ASC`,
		sellerID, customerID)
	return messages, err
}

// ListConversationPartners returns the distinct customers who have a
// message thread with the seller.
func (s *Store) ListConversationPartners(ctx context.Context, sellerID string) ([]models.Account, error) {
	query := `
		SELECT u.* FROM users u
		WHERE u.role = $1
		  AND u.user_id IN (SELECT DISTINCT customer_id FROM messages WHERE seller_id = $2)
		ORDER BY u.first_name, u.last_name`

	partners := []models.Account{}
	err := s.db.SelectContext(ctx, &partners, query, models.RoleCustomer, sellerID)
	return partners, err
}
