package service

import (
	"context"
	"time"

	"github.com/JLSed/ShoeFreak-Seller/internal/models"
)

// Store interfaces cover exactly what each service consumes, so the
// state machines can be exercised against fakes. *store.Store satisfies
// all of them.

type AccountStore interface {
	CreateAccount(ctx context.Context, account *models.Account) error
	GetAccountByID(ctx context.Context, id string) (*models.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	UpdateAccountProfile(ctx context.Context, id, firstName, lastName, contactNumber, address, photoURL string) error
}

type ListingStore interface {
	CreateListing(ctx context.Context, listing *models.Listing) error
	GetListingByID(ctx context.Context, id string) (*models.Listing, error)
	UpdateListing(ctx context.Context, listing *models.Listing) error
	ListAvailableListings(ctx context.Context) ([]models.ListingWithPublisher, error)
	ListListingsBySeller(ctx context.Context, sellerID string) ([]models.Listing, error)
}

type OrderStore interface {
	GetOrderDetail(ctx context.Context, id string) (*models.OrderDetail, error)
	ListPendingOrdersBySeller(ctx context.Context, sellerID string) ([]models.Order, error)
	CompleteOrderTx(ctx context.Context, orderID string) (*models.OrderDetail, *models.Sale, error)
	CancelOrderTx(ctx context.Context, orderID string) (*models.OrderDetail, error)
}

type MessageStore interface {
	CreateMessage(ctx context.Context, msg *models.Message) error
	ListMessages(ctx context.Context, sellerID, customerID string) ([]models.Message, error)
	ListConversationPartners(ctx context.Context, sellerID string) ([]models.Account, error)
}

type FeedStore interface {
	CreatePost(ctx context.Context, post *models.Post) error
	ListPosts(ctx context.Context) ([]models.PostWithCounts, error)
	ListPostsByAuthor(ctx context.Context, authorID string) ([]models.PostWithCounts, error)
	DeletePost(ctx context.Context, postID, authorID string) error
	LikePost(ctx context.Context, postID, userID string) error
	UnlikePost(ctx context.Context, postID, userID string) error
	HasLiked(ctx context.Context, postID, userID string) (bool, error)
	LikeCount(ctx context.Context, postID string) (int64, error)
	CreateComment(ctx context.Context, comment *models.Comment) error
	ListComments(ctx context.Context, postID string) ([]models.Comment, error)
	CommentCount(ctx context.Context, postID string) (int64, error)
}

type AnalyticsStore interface {
	GetSellerStats(ctx context.Context, sellerID string) (*models.SellerStats, error)
	GetSalesStats(ctx context.Context, sellerID string) (*models.SalesStats, error)
	GetProductSales(ctx context.Context, sellerID string) ([]models.ProductSales, error)
	GetCustomerSales(ctx context.Context, sellerID string) ([]models.CustomerSales, error)
}

type NotificationStore interface {
	ListNotificationsByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error)
}

// Uploader stores an image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error)
}

// SessionWriter creates and revokes session records.
type SessionWriter interface {
	SetSession(ctx context.Context, sessionID, accountID string, ttl time.Duration) error
	DeleteSession(ctx context.Context, sessionID string) error
}

// OrderLocker serializes in-flight actions per order.
type OrderLocker interface {
	AcquireOrderLock(ctx context.Context, orderID string, ttl time.Duration) (bool, error)
	ReleaseOrderLock(ctx context.Context, orderID string) error
}

// OrderEvents publishes order lifecycle fanout.
type OrderEvents interface {
	PublishOrderCompleted(ctx context.Context, event *models.OrderCompletedEvent) error
	PublishOrderCancelled(ctx context.Context, event *models.OrderCancelledEvent) error
	PublishNotificationCreated(ctx context.Context, event *models.NotificationCreatedEvent) error
}

// MessageEvents publishes chat fanout.
type MessageEvents interface {
	PublishMessageSent(ctx context.Context, event *models.MessageSentEvent) error
}
