package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JLSed/ShoeFreak-Seller/internal/models"
	"github.com/google/uuid"
)

const (
	completedNotificationBody = "Your order for %s has been completed and is ready for shipping."
	cancelledNotificationBody = "Order for %s has been cancelled by the seller."
)

// GetOrderByID retrieves an order by ID
func (s *Store) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := s.db.GetContext(ctx, &order, "SELECT * FROM checkouts WHERE checkout_id = $1", id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrderDetail retrieves an order with its listing and buyer joined.
func (s *Store) GetOrderDetail(ctx context.Context, id string) (*models.OrderDetail, error) {
	order, err := s.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	listing, err := s.GetListingByID(ctx, order.ListingID)
	if err != nil {
		return nil, err
	}

	buyer, err := s.GetAccountByID(ctx, order.BuyerID)
	if err != nil {
		return nil, err
	}

	return &models.OrderDetail{Order: *order, Listing: *listing, Buyer: *buyer}, nil
}

// ListPendingOrdersBySeller returns PENDING orders against a seller's
// listings, oldest-first.
func (s *Store) ListPendingOrdersBySeller(ctx context.Context, sellerID string) ([]models.Order, error) {
	query := `
		SELECT c.* FROM checkouts c
		JOIN shoes sh ON sh.shoe_id = c.shoe_id
		WHERE sh.published_by = $1 AND c.status = $2
		ORDER BY c.created_at ASC`

	orders := []models.Order{}
	err := s.db.SelectContext(ctx, &orders, query, sellerID, models.OrderStatusPending)
	return orders, err
}

// CompleteOrderTx transitions a PENDING order to SENDING inside a single
// transaction: order status, listing status to SOLD, buyer notification,
// and the sale record are committed together. The status update is
// conditional on the order still being PENDING, so a second Complete (or
// two racing tabs) gets ErrOrderNotPending instead of a double-applied
// transition.
func (s *Store) CompleteOrderTx(ctx context.Context, orderID string) (*models.OrderDetail, *models.Sale, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	var order models.Order
	err = tx.GetContext(ctx, &order, "SELECT * FROM checkouts WHERE checkout_id = $1 FOR UPDATE", orderID)
	if err == sql.ErrNoRows {
		return nil, nil, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to lock order: %w", err)
	}

	if order.Status != models.OrderStatusPending {
		return nil, nil, fmt.Errorf("order %s is %s: %w", orderID, order.Status, ErrOrderNotPending)
	}

	var listing models.Listing
	err = tx.GetContext(ctx, &listing, "SELECT * FROM shoes WHERE shoe_id = $1 FOR UPDATE", order.ListingID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to lock listing: %w", err)
	}

	err = tx.GetContext(ctx, &order,
		`UPDATE checkouts SET status = $1, updated_at = NOW()
		 WHERE checkout_id = $2 AND status = $3
		 RETURNING *`,
		models.OrderStatusSending, orderID, models.OrderStatusPending)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update order status: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE shoes SET status = $1 WHERE shoe_id = $2",
		models.ListingStatusSold, listing.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update listing status: %w", err)
	}
	listing.Status = models.ListingStatusSold

	notification := &models.Notification{
		ID:          uuid.New().String(),
		SenderID:    listing.SellerID,
		RecipientID: order.BuyerID,
		ListingID:   listing.ID,
		Body:        fmt.Sprintf(completedNotificationBody, listing.Name),
	}
	if err := insertNotificationTx(ctx, tx, notification); err != nil {
		return nil, nil, fmt.Errorf("failed to create notification: %w", err)
	}

	sale := &models.Sale{
		ID:        uuid.New().String(),
		ListingID: listing.ID,
		SellerID:  listing.SellerID,
		BuyerID:   order.BuyerID,
		Price:     listing.Price,
	}
	err = tx.GetContext(ctx, &sale.SoldAt,
		`INSERT INTO sales (sale_id, shoe_id, seller_id, buyer_id, price)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING sold_at`,
		sale.ID, sale.ListingID, sale.SellerID, sale.BuyerID, sale.Price)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to record sale: %w", err)
	}

	var buyer models.Account
	if err := tx.GetContext(ctx, &buyer, "SELECT * FROM users WHERE user_id = $1", order.BuyerID); err != nil {
		return nil, nil, fmt.Errorf("failed to load buyer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	return &models.OrderDetail{Order: order, Listing: listing, Buyer: buyer}, sale, nil
}

// CancelOrderTx transitions a PENDING order to CANCELLED and writes the
// buyer notification in the same transaction. The listing keeps its
// status so it stays available for resale.
func (s *Store) CancelOrderTx(ctx context.Context, orderID string) (*models.OrderDetail, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var order models.Order
	err = tx.GetContext(ctx, &order, "SELECT * FROM checkouts WHERE checkout_id = $1 FOR UPDATE", orderID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("order %s: %w", orderID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock order: %w", err)
	}

	if order.Status != models.OrderStatusPending {
		return nil, fmt.Errorf("order %s is %s: %w", orderID, order.Status, ErrOrderNotPending)
	}

	var listing models.Listing
	if err := tx.GetContext(ctx, &listing, "SELECT * FROM shoes WHERE shoe_id = $1", order.ListingID); err != nil {
		return nil, fmt.Errorf("failed to load listing: %w", err)
	}

	err = tx.GetContext(ctx, &order,
		`UPDATE checkouts SET status = $1, updated_at = NOW()
		 WHERE checkout_id = $2 AND status = $3
		 RETURNING *`,
		models.OrderStatusCancelled, orderID, models.OrderStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	notification := &models.Notification{
		ID:          uuid.New().String(),
		SenderID:    listing.SellerID,
		RecipientID: order.BuyerID,
		ListingID:   listing.ID,
		Body:        fmt.Sprintf(cancelledNotificationBody, listing.Name),
	}
	if err := insertNotificationTx(ctx, tx, notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	var buyer models.Account
	if err := tx.GetContext(ctx, &buyer, "SELECT * FROM users WHERE user_id = $1", order.BuyerID); err != nil {
		return nil, fmt.Errorf("failed to load buyer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &models.OrderDetail{Order: order, Listing: listing, Buyer: buyer}, nil
}
