package api

import (
	"net/http"
	"strconv"

	"github.com/JLSed/ShoeFreak-Seller/internal/service"
	"github.com/gin-gonic/gin"
)

// listingInputFromForm reads listing fields out of a multipart form.
// Colors and sizes arrive as repeated form fields.
func listingInputFromForm(c *gin.Context) (*service.ListingInput, error) {
	price, err := strconv.ParseInt(c.PostForm("price"), 10, 64)
	if err != nil || price < 1 {
		return nil, errInvalidPrice
	}

	return &service.ListingInput{
		Name:        c.PostForm("shoe_name"),
		Brand:       c.PostForm("brand"),
		Category:    c.PostForm("category"),
		Description: c.PostForm("description"),
		Price:       price,
		Colors:      c.PostFormArray("colors"),
		Sizes:       c.PostFormArray("sizes"),
	}, nil
}

var errInvalidPrice = &formError{"price must be a positive integer"}

type formError struct{ msg string }

func (e *formError) Error() string { return e.msg }

// publishListing creates a listing from a multipart form with its image
func (h *Handler) publishListing(c *gin.Context) {
	input, err := listingInputFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Name == "" || input.Brand == "" || input.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "shoe_name, brand and category are required"})
		return
	}

	image, err := readImage(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image", "details": err.Error()})
		return
	}

	listing, err := h.listingService.Publish(c.Request.Context(), currentAccountID(c), input, image)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"listing": listing})
}

// updateListing rewrites a listing; the image is optional on update
func (h *Handler) updateListing(c *gin.Context) {
	input, err := listingInputFromForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := readImage(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image", "details": err.Error()})
		return
	}

	listing, err := h.listingService.Update(c.Request.Context(), currentAccountID(c), c.Param("id"), input, image)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"listing": listing})
}

// getListing returns one listing
func (h *Handler) getListing(c *gin.Context) {
	listing, err := h.listingService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listing": listing})
}

// listMarketplace returns all AVAILABLE listings with publisher info
func (h *Handler) listMarketplace(c *gin.Context) {
	listings, err := h.listingService.ListAvailable(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

// listOwnListings returns the seller's listings in every status
func (h *Handler) listOwnListings(c *gin.Context) {
	listings, err := h.listingService.ListBySeller(c.Request.Context(), currentAccountID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings})
}
