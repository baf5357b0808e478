package service

import (
	"context"

	"github.com/JLSed/ShoeFreak-Seller/internal/models"
)

// How many entries the best/least seller lists carry.
const rankingSize = 5

// AnalyticsService derives read-only seller analytics from the
// append-only sales table.
type AnalyticsService struct {
	analytics AnalyticsStore
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(analytics AnalyticsStore) *AnalyticsService {
	return &AnalyticsService{analytics: analytics}
}

// ProductAnalytics splits the sale ranking into best and least sellers.
type ProductAnalytics struct {
	BestSellers  []models.ProductSales `json:"best_sellers"`
	LeastSellers []models.ProductSales `json:"least_sellers"`
}

// SellerStats returns listed/sold/pending counts
func (s *AnalyticsService) SellerStats(ctx context.Context, sellerID string) (*models.SellerStats, error) {
	return s.analytics.GetSellerStats(ctx, sellerID)
}

// SellerSalesStats returns revenue aggregates
func (s *AnalyticsService) SellerSalesStats(ctx context.Context, sellerID string) (*models.SalesStats, error) {
	return s.analytics.GetSalesStats(ctx, sellerID)
}

// ProductAnalytics returns the seller's best and least selling listings.
// A seller with no sales gets two empty lists.
func (s *AnalyticsService) ProductAnalytics(ctx context.Context, sellerID string) (*ProductAnalytics, error) {
	ranked, err := s.analytics.GetProductSales(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	result := &ProductAnalytics{
		BestSellers:  []models.ProductSales{},
		LeastSellers: []models.ProductSales{},
	}

	for i := 0; i < len(ranked) && i < rankingSize; i++ {
		result.BestSellers = append(result.BestSellers, ranked[i])
	}
	// Walk the tail backwards so the least sold listing comes first.
	for i := len(ranked) - 1; i >= 0 && len(result.LeastSellers) < rankingSize; i-- {
		if i < len(result.BestSellers) {
			break
		}
		result.LeastSellers = append(result.LeastSellers, ranked[i])
	}

	return result, nil
}

// CustomerAnalytics returns the seller's most loyal customers
func (s *AnalyticsService) CustomerAnalytics(ctx context.Context, sellerID string) ([]models.CustomerSales, error) {
	return s.analytics.GetCustomerSales(ctx, sellerID)
}
