package models

import (
	"time"

	"github.com/lib/pq"
)

// Account roles
const (
	RoleSeller   = "SELLER"
	RoleCustomer = "CUSTOMER"
)

// Listing statuses
const (
	ListingStatusAvailable = "AVAILABLE"
	ListingStatusPending   = "PENDING"
	ListingStatusSold      = "SOLD"
)

// Order statuses. SENDING and CANCELLED are terminal.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusSending   = "SENDING"
	OrderStatusCancelled = "CANCELLED"
)

// Message sender tags
const (
	SenderSeller   = "SELLER"
	SenderCustomer = "CUSTOMER"
)

// Account is an identity record with a role tag. The role is assigned at
// sign-up and never changes afterwards.
type Account struct {
	ID            string    `db:"user_id" json:"user_id"`
	FirstName     string    `db:"first_name" json:"first_name"`
	LastName      string    `db:"last_name" json:"last_name"`
	Email         string    `db:"email" json:"email"`
	ContactNumber string    `db:"contact_number" json:"contact_number"`
	Address       string    `db:"address" json:"address"`
	PhotoURL      string    `db:"photo_url" json:"photo_url,omitempty"`
	Role          string    `db:"role" json:"role"`
	PasswordHash  string    `db:"password_hash" json:"-"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// Listing is a sneaker offered for sale. Status is mutated only by the
// order lifecycle; listings are never deleted.
type Listing struct {
	ID          string         `db:"shoe_id" json:"shoe_id"`
	Name        string         `db:"shoe_name" json:"shoe_name"`
	Brand       string         `db:"brand" json:"brand"`
	Category    string         `db:"category" json:"category"`
	Description string         `db:"description" json:"description"`
	Price       int64          `db:"price" json:"price"`
	Colors      pq.StringArray `db:"colors" json:"colors"`
	Sizes       pq.StringArray `db:"sizes" json:"sizes"`
	ImageURL    string         `db:"image_url" json:"image_url"`
	Status      string         `db:"status" json:"status"`
	SellerID    string         `db:"published_by" json:"published_by"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
}

// ListingWithPublisher joins the publisher identity onto a listing for
// marketplace views.
type ListingWithPublisher struct {
	Listing
	PublisherFirstName string `db:"publisher_first_name" json:"publisher_first_name"`
	PublisherLastName  string `db:"publisher_last_name" json:"publisher_last_name"`
}

// Order is a buyer's claim against a listing. Created by buyer checkout,
// consumed and transitioned by the seller.
type Order struct {
	ID            string    `db:"checkout_id" json:"checkout_id"`
	ListingID     string    `db:"shoe_id" json:"shoe_id"`
	BuyerID       string    `db:"buyer_id" json:"buyer_id"`
	Status        string    `db:"status" json:"status"`
	PaymentMethod string    `db:"payment_method" json:"payment_method"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// OrderDetail is an order with its listing and buyer joined, as shown on
// the order page.
type OrderDetail struct {
	Order   Order   `json:"order"`
	Listing Listing `json:"listing"`
	Buyer   Account `json:"buyer"`
}

// Message is directed chat text between a seller and a customer.
type Message struct {
	ID         string    `db:"message_id" json:"message_id"`
	SellerID   string    `db:"seller_id" json:"seller_id"`
	CustomerID string    `db:"customer_id" json:"customer_id"`
	Body       string    `db:"body" json:"body"`
	Sender     string    `db:"sender" json:"sender"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// Post is social feed content. Counters are derived by counting related
// rows at read time, not stored as running tallies.
type Post struct {
	ID        string    `db:"post_id" json:"post_id"`
	AuthorID  string    `db:"author_id" json:"author_id"`
	Content   string    `db:"content" json:"content"`
	ImageURL  string    `db:"image_url" json:"image_url,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// PostWithCounts is a post plus its derived engagement counts and author
// identity, as returned by feed list queries.
type PostWithCounts struct {
	Post
	AuthorFirstName string `db:"author_first_name" json:"author_first_name"`
	AuthorLastName  string `db:"author_last_name" json:"author_last_name"`
	LikesCount      int64  `db:"likes_count" json:"likes_count"`
	CommentsCount   int64  `db:"comments_count" json:"comments_count"`
}

// Comment on a post.
type Comment struct {
	ID        string    `db:"comment_id" json:"comment_id"`
	PostID    string    `db:"post_id" json:"post_id"`
	AuthorID  string    `db:"author_id" json:"author_id"`
	Body      string    `db:"body" json:"body"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Notification addressed to a buyer, created during order transitions.
type Notification struct {
	ID          string    `db:"notification_id" json:"notification_id"`
	SenderID    string    `db:"sender_id" json:"sender_id"`
	RecipientID string    `db:"recipient_id" json:"recipient_id"`
	ListingID   string    `db:"shoe_id" json:"shoe_id"`
	Body        string    `db:"body" json:"body"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Sale is an append-only analytics fact created when an order completes.
type Sale struct {
	ID        string    `db:"sale_id" json:"sale_id"`
	ListingID string    `db:"shoe_id" json:"shoe_id"`
	SellerID  string    `db:"seller_id" json:"seller_id"`
	BuyerID   string    `db:"buyer_id" json:"buyer_id"`
	Price     int64     `db:"price" json:"price"`
	SoldAt    time.Time `db:"sold_at" json:"sold_at"`
}
