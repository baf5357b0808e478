package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// sellerStats returns listed/sold/pending counts
func (h *Handler) sellerStats(c *gin.Context) {
	stats, err := h.analyticsService.SellerStats(c.Request.Context(), currentAccountID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// sellerSalesStats returns revenue aggregates
func (h *Handler) sellerSalesStats(c *gin.Context) {
	stats, err := h.analyticsService.SellerSalesStats(c.Request.Context(), currentAccountID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// productAnalytics returns best/least sellers
func (h *Handler) productAnalytics(c *gin.Context) {
	analytics, err := h.analyticsService.ProductAnalytics(c.Request.Context(), currentAccountID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

// customerAnalytics returns the most loyal customers
func (h *Handler) customerAnalytics(c *gin.Context) {
	customers, err := h.analyticsService.CustomerAnalytics(c.Request.Context(), currentAccountID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}
