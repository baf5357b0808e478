package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/JLSed/ShoeFreak-Seller/internal/auth"
	"github.com/JLSed/ShoeFreak-Seller/internal/realtime"
	"github.com/JLSed/ShoeFreak-Seller/internal/service"
	"github.com/JLSed/ShoeFreak-Seller/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Images larger than this are rejected before upload.
const maxImageBytes = 10 << 20

// Handler contains HTTP handlers
type Handler struct {
	authService      *service.AuthService
	listingService   *service.ListingService
	orderService     *service.OrderService
	messageService   *service.MessageService
	feedService      *service.FeedService
	analyticsService *service.AnalyticsService
	gate             *auth.Gate
	hub              *realtime.Hub
	jwtSecret        []byte
}

// NewHandler creates a new HTTP handler
func NewHandler(
	authService *service.AuthService,
	listingService *service.ListingService,
	orderService *service.OrderService,
	messageService *service.MessageService,
	feedService *service.FeedService,
	analyticsService *service.AnalyticsService,
	gate *auth.Gate,
	hub *realtime.Hub,
	jwtSecret []byte,
) *Handler {
	return &Handler{
		authService:      authService,
		listingService:   listingService,
		orderService:     orderService,
		messageService:   messageService,
		feedService:      feedService,
		analyticsService: analyticsService,
		gate:             gate,
		hub:              hub,
		jwtSecret:        jwtSecret,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	public := v1.Group("/auth", PublicOnly(h.gate, h.jwtSecret))
	{
		public.POST("/signup", h.signUp)
		public.POST("/signin", h.signIn)
	}

	seller := v1.Group("", SellerRequired(h.gate, h.jwtSecret))
	{
		seller.POST("/auth/signout", h.signOut)
		seller.GET("/auth/me", h.currentAccount)
		seller.PUT("/auth/me", h.updateProfile)

		seller.GET("/marketplace", h.listMarketplace)
		seller.POST("/listings", h.publishListing)
		seller.GET("/listings", h.listOwnListings)
		seller.GET("/listings/:id", h.getListing)
		seller.PUT("/listings/:id", h.updateListing)

		seller.GET("/orders", h.listPendingOrders)
		seller.GET("/orders/:id", h.getOrder)
		seller.POST("/orders/:id/complete", h.completeOrder)
		seller.POST("/orders/:id/cancel", h.cancelOrder)

		seller.GET("/messages/partners", h.listPartners)
		seller.GET("/messages/:customerId", h.listMessages)
		seller.POST("/messages/:customerId", h.sendMessage)
		seller.GET("/notifications", h.listNotifications)
		seller.GET("/ws", h.serveWS)

		seller.GET("/posts", h.listPosts)
		seller.POST("/posts", h.createPost)
		seller.GET("/users/:userId/posts", h.listUserPosts)
		seller.DELETE("/posts/:id", h.deletePost)
		seller.POST("/posts/:id/like", h.likePost)
		seller.DELETE("/posts/:id/like", h.unlikePost)
		seller.GET("/posts/:id/like", h.likeStatus)
		seller.GET("/posts/:id/comments", h.listComments)
		seller.POST("/posts/:id/comments", h.addComment)

		seller.GET("/analytics/stats", h.sellerStats)
		seller.GET("/analytics/sales", h.sellerSalesStats)
		seller.GET("/analytics/products", h.productAnalytics)
		seller.GET("/analytics/customers", h.customerAnalytics)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// respondError translates service and store errors into HTTP responses.
// Every failure is terminal for the action; there are no retries.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrActionInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrOrderNotPending):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// readImage pulls an optional image file out of a multipart form.
// Returns nil when the field is absent.
func readImage(c *gin.Context, field string) (*service.ImageUpload, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	if fileHeader.Size > maxImageBytes {
		return nil, errors.New("image too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		return nil, err
	}

	return &service.ImageUpload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
