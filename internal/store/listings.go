package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JLSed/ShoeFreak-Seller/internal/models"
)

// CreateListing inserts a new listing with status AVAILABLE.
func (s *Store) CreateListing(ctx context.Context, listing *models.Listing) error {
	query := `
		INSERT INTO shoes (shoe_id, shoe_name, brand, category, description, price, colors, sizes, image_url, status, published_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at`

	return s.db.GetContext(ctx, &listing.CreatedAt, query,
		listing.ID, listing.Name, listing.Brand, listing.Category, listing.Description,
		listing.Price, listing.Colors, listing.Sizes, listing.ImageURL, listing.Status, listing.SellerID)
}

// GetListingByID retrieves a listing by its id
func (s *Store) GetListingByID(ctx context.Context, id string) (*models.Listing, error) {
	var listing models.Listing
	err := s.db.GetContext(ctx, &listing, "SELECT * FROM shoes WHERE shoe_id = $1", id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("listing %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// UpdateListing updates the descriptive fields and image reference of a
// listing. Status is owned by the order lifecycle and is not written here.
func (s *Store) UpdateListing(ctx context.Context, listing *models.Listing) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE shoes
		 SET shoe_name = $1, brand = $2, category = $3, description = $4,
		     price = $5, colors = $6, sizes = $7, image_url = $8
		 WHERE shoe_id = $9`,
		listing.Name, listing.Brand, listing.Category, listing.Description,
		listing.Price, listing.Colors, listing.Sizes, listing.ImageURL, listing.ID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("listing %s: %w", listing.ID, ErrNotFound)
	}
	return nil
}

// ListAvailableListings returns AVAILABLE listings newest-first with the
// publisher identity joined, for the marketplace view.
func (s *Store) ListAvailableListings(ctx context.Context) ([]models.ListingWithPublisher, error) {
	query := `
		SELECT sh.*, u.first_name AS publisher_first_name, u.last_name AS publisher_last_name
		FROM shoes sh
		JOIN users u ON u.user_id = sh.published_by
		WHERE sh.status = $1
		ORDER BY sh.created_at DESC`

	listings := []models.ListingWithPublisher{}
	err := s.db.SelectContext(ctx, &listings, query, models.ListingStatusAvailable)
	return listings, err
}

// ListListingsBySeller returns all of a seller's listings regardless of
// status, newest-first.
func (s *Store) ListListingsBySeller(ctx context.Context, sellerID string) ([]models.Listing, error) {
	listings := []models.Listing{}
	err := s.db.SelectContext(ctx, &listings,
		"SELECT * FROM shoes WHERE published_by = $1 ORDER BY created_at DESC", sellerID)
	return listings, err
}
