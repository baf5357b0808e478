package service

import (
	"context"
	"errors"
	"testing"

	"github.com/JLSed/ShoeFreak-Seller/internal/models"
	"github.com/JLSed/ShoeFreak-Seller/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeListingStore struct {
	listings map[string]*models.Listing
}

func newFakeListingStore() *fakeListingStore {
	return &fakeListingStore{listings: make(map[string]*models.Listing)}
}

func (f *fakeListingStore) CreateListing(_ context.Context, listing *models.Listing) error {
	f.listings[listing.ID] = listing
	return nil
}

func (f *fakeListingStore) GetListingByID(_ context.Context, id string) (*models.Listing, error) {
	l, ok := f.listings[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	dup := *l
	return &dup, nil
}

func (f *fakeListingStore) UpdateListing(_ context.Context, listing *models.Listing) error {
	if _, ok := f.listings[listing.ID]; !ok {
		return store.ErrNotFound
	}
	f.listings[listing.ID] = listing
	return nil
}

func (f *fakeListingStore) ListAvailableListings(_ context.Context) ([]models.ListingWithPublisher, error) {
	var out []models.ListingWithPublisher
	for _, l := range f.listings {
		if l.Status == models.ListingStatusAvailable {
			out = append(out, models.ListingWithPublisher{Listing: *l})
		}
	}
	return out, nil
}

func (f *fakeListingStore) ListListingsBySeller(_ context.Context, sellerID string) ([]models.Listing, error) {
	var out []models.Listing
	for _, l := range f.listings {
		if l.SellerID == sellerID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func listingInput() *ListingInput {
	return &ListingInput{
		Name:     "Air Max 90",
		Brand:    "Nike",
		Category: "Running",
		Price:    4500,
		Colors:   []string{"white", "red"},
		Sizes:    []string{"9", "10"},
	}
}

func shoeImage() *ImageUpload {
	return &ImageUpload{FileName: "shoe.jpg", ContentType: "image/jpeg", Data: []byte("jpeg")}
}

func TestPublishListing(t *testing.T) {
	listings := newFakeListingStore()
	uploader := &fakeUploader{}
	svc := NewListingService(listings, uploader)

	listing, err := svc.Publish(context.Background(), "seller-1", listingInput(), shoeImage())
	require.NoError(t, err)

	assert.Equal(t, models.ListingStatusAvailable, listing.Status)
	assert.Equal(t, "seller-1", listing.SellerID)
	assert.Contains(t, listing.ImageURL, "shoes/")
}

func TestPublishRequiresImage(t *testing.T) {
	svc := NewListingService(newFakeListingStore(), &fakeUploader{})

	_, err := svc.Publish(context.Background(), "seller-1", listingInput(), nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPublishAbortsOnUploadFailure(t *testing.T) {
	listings := newFakeListingStore()
	uploader := &fakeUploader{err: errors.New("bucket unavailable")}
	svc := NewListingService(listings, uploader)

	_, err := svc.Publish(context.Background(), "seller-1", listingInput(), shoeImage())
	assert.Error(t, err)
	// No orphan listing without its image.
	assert.Empty(t, listings.listings)
}

func TestUpdateListing(t *testing.T) {
	listings := newFakeListingStore()
	svc := NewListingService(listings, &fakeUploader{})

	listing, err := svc.Publish(context.Background(), "seller-1", listingInput(), shoeImage())
	require.NoError(t, err)

	input := listingInput()
	input.Price = 3900
	updated, err := svc.Update(context.Background(), "seller-1", listing.ID, input, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(3900), updated.Price)
	// Without a new image the stored reference is kept.
	assert.Equal(t, listing.ImageURL, updated.ImageURL)
	assert.Equal(t, listing.Status, updated.Status)
}

func TestUpdateForeignListing(t *testing.T) {
	listings := newFakeListingStore()
	svc := NewListingService(listings, &fakeUploader{})

	listing, err := svc.Publish(context.Background(), "seller-1", listingInput(), shoeImage())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), "seller-2", listing.ID, listingInput(), nil)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestListAvailableExcludesSold(t *testing.T) {
	listings := newFakeListingStore()
	svc := NewListingService(listings, &fakeUploader{})

	sold, err := svc.Publish(context.Background(), "seller-1", listingInput(), shoeImage())
	require.NoError(t, err)
	listings.listings[sold.ID].Status = models.ListingStatusSold

	_, err = svc.Publish(context.Background(), "seller-1", listingInput(), shoeImage())
	require.NoError(t, err)

	available, err := svc.ListAvailable(context.Background())
	require.NoError(t, err)
	assert.Len(t, available, 1)
}
