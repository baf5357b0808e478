package store

import (
	"context"

	"github.com/JLSed/ShoeFreak-Seller/internal/models"
)

// ListSalesBySeller returns a seller's sale records, newest-first.
func (s *Store) ListSalesBySeller(ctx context.Context, sellerID string) ([]models.Sale, error) {
	sales := []models.Sale{}
	err := s.db.SelectContext(ctx, &sales,
		"SELECT * FROM sales WHERE seller_id = $1 ORDER BY sold_at DESC", sellerID)
	return sales, err
}

// GetSellerStats counts a seller's listed shoes, sold shoes and pending
// orders in one query.
func (s *Store) GetSellerStats(ctx context.Context, sellerID string) (*models.SellerStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM shoes WHERE published_by = $1) AS listed_shoes,
			(SELECT COUNT(*) FROM shoes WHERE published_by = $1 AND status = $2) AS sold_shoes,
			(SELECT COUNT(*) FROM checkouts c JOIN shoes sh ON sh.shoe_id = c.shoe_id
			 WHERE sh.published_by = $1 AND c.status = $3) AS pending_orders`

	var stats models.SellerStats
	err := s.db.GetContext(ctx, &stats, query, sellerID,
		models.ListingStatusSold, models.OrderStatusPending)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetSalesStats aggregates revenue from the sales table. Sellers with no
// sales get zeros, not an error.
func (s *Store) GetSalesStats(ctx context.Context, sellerID string) (*models.SalesStats, error) {
	query := `
		SELECT
			COUNT(*) AS sales_count,
			COALESCE(SUM(price), 0) AS total_revenue,
			COALESCE(SUM(price) FILTER (WHERE sold_at >= date_trunc('day', NOW())), 0) AS revenue_today,
			COALESCE(SUM(price) FILTER (WHERE sold_at >= date_trunc('month', NOW())), 0) AS revenue_month
		FROM sales
		WHERE seller_id = $1`

	var stats models.SalesStats
	err := s.db.GetContext(ctx, &stats, query, sellerID)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetProductSales ranks a seller's listings by sale count, best sellers
// first. Callers read the head for best sellers and the tail for least.
func (s *Store) GetProductSales(ctx context.Context, sellerID string) ([]models.ProductSales, error) {
	query := `
		SELECT s.shoe_id, sh.shoe_name,
		       COUNT(*) AS sale_count,
		       COALESCE(SUM(s.price), 0) AS revenue
		FROM sales s
		JOIN shoes sh ON sh.shoe_id = s.shoe_id
		WHERE s.seller_id = $1
		GROUP BY s.shoe_id, sh.shoe_name
		ORDER BY sale_count DESC, revenue DESC`

	products := []models.ProductSales{}
	err := s.db.SelectContext(ctx, &products, query, sellerID)
	return products, err
}

// GetCustomerSales ranks buyers by purchases from this seller, most
// loyal first.
func (s *Store) GetCustomerSales(ctx context.Context, sellerID string) ([]models.CustomerSales, error) {
	query := `
		SELECT s.buyer_id, u.first_name, u.last_name,
		       COUNT(*) AS purchases,
		       COALESCE(SUM(s.price), 0) AS total_spent
		FROM sales s
		JOIN users u ON u.user_id = s.buyer_id
		WHERE s.seller_id = $1
		GROUP BY s.buyer_id, u.first_name, u.last_name
		ORDER BY purchases DESC, total_spent DESC`

	customers := []models.CustomerSales{}
	err := s.db.SelectContext(ctx, &customers, query, sellerID)
	return customers, err
}
