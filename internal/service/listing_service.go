package service

import (
	"context"
	"fmt"

	"github.com/JLSed/ShoeFreak-Seller/internal/models"
	"github.com/JLSed/ShoeFreak-Seller/internal/storage"
	"github.com/JLSed/ShoeFreak-Seller/internal/util"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListingService publishes and updates sneaker listings.
type ListingService struct {
	listings ListingStore
	uploader Uploader
	logger   *zap.Logger
}

// NewListingService creates a new listing service
func NewListingService(listings ListingStore, uploader Uploader) *ListingService {
	return &ListingService{
		listings: listings,
		uploader: uploader,
		logger:   util.GetLogger(),
	}
}

// ImageUpload is a raw image attached to a publish or update request.
type ImageUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ListingInput carries the descriptive fields of a listing
type ListingInput struct {
	Name        string   `json:"shoe_name" binding:"required"`
	Brand       string   `json:"brand" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Description string   `json:"description"`
	Price       int64    `json:"price" binding:"required,min=1"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
}

// Publish uploads the image (required for new listings) and creates the
// listing. An upload failure aborts the whole operation: no listing row
// is created without its image.
func (s *ListingService) Publish(ctx context.Context, sellerID string, input *ListingInput, image *ImageUpload) (*models.Listing, error) {
	ctx, span := util.StartSpan(ctx, "ListingService.Publish")
	defer span.End()

	if image == nil || len(image.Data) == 0 {
		return nil, fmt.Errorf("listing image is required: %w", ErrValidation)
	}

	imageURL, err := s.uploadImage(ctx, image)
	if err != nil {
		return nil, err
	}

	listing := &models.Listing{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Brand:       input.Brand,
		Category:    input.Category,
		Description: input.Description,
		Price:       input.Price,
		Colors:      input.Colors,
		Sizes:       input.Sizes,
		ImageURL:    imageURL,
		Status:      models.ListingStatusAvailable,
		SellerID:    sellerID,
	}

	if err := s.listings.CreateListing(ctx, listing); err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}

	util.ListingsPublishedTotal.Inc()
	s.logger.Info("Listing published",
		zap.String("listing_id", listing.ID),
		zap.String("seller_id", sellerID))
	return listing, nil
}

// Update rewrites the descriptive fields of an existing listing. With a
// new image the upload happens first and its failure aborts the update;
// without one the stored image reference is kept unchanged.
func (s *ListingService) Update(ctx context.Context, sellerID, listingID string, input *ListingInput, image *ImageUpload) (*models.Listing, error) {
	ctx, span := util.StartSpan(ctx, "ListingService.Update")
	defer span.End()

	existing, err := s.listings.GetListingByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if existing.SellerID != sellerID {
		return nil, fmt.Errorf("listing %s: %w", listingID, ErrForbidden)
	}

	imageURL := existing.ImageURL
	if image != nil && len(image.Data) > 0 {
		imageURL, err = s.uploadImage(ctx, image)
		if err != nil {
			return nil, err
		}
	}

	updated := &models.Listing{
		ID:          listingID,
		Name:        input.Name,
		Brand:       input.Brand,
		Category:    input.Category,
		Description: input.Description,
		Price:       input.Price,
		Colors:      input.Colors,
		Sizes:       input.Sizes,
		ImageURL:    imageURL,
		Status:      existing.Status,
		SellerID:    existing.SellerID,
		CreatedAt:   existing.CreatedAt,
	}

	if err := s.listings.UpdateListing(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}
	return updated, nil
}

// Get retrieves a single listing
func (s *ListingService) Get(ctx context.Context, listingID string) (*models.Listing, error) {
	return s.listings.GetListingByID(ctx, listingID)
}

// ListAvailable returns the marketplace view of AVAILABLE listings
func (s *ListingService) ListAvailable(ctx context.Context) ([]models.ListingWithPublisher, error) {
	return s.listings.ListAvailableListings(ctx)
}

// ListBySeller returns all of one seller's listings
func (s *ListingService) ListBySeller(ctx context.Context, sellerID string) ([]models.Listing, error) {
	return s.listings.ListListingsBySeller(ctx, sellerID)
}

func (s *ListingService) uploadImage(ctx context.Context, image *ImageUpload) (string, error) {
	objectPath := storage.RandomObjectPath("shoes", image.FileName)
	url, err := s.uploader.Upload(ctx, objectPath, image.Data, image.ContentType)
	if err != nil {
		return "", fmt.Errorf("image upload failed: %w", err)
	}
	return url, nil
}
