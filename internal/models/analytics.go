package models

// SellerStats summarizes a seller's catalog and workload.
type SellerStats struct {
	ListedShoes   int64 `db:"listed_shoes" json:"listed_shoes"`
	SoldShoes     int64 `db:"sold_shoes" json:"sold_shoes"`
	PendingOrders int64 `db:"pending_orders" json:"pending_orders"`
}

// SalesStats aggregates a seller's sale records.
type SalesStats struct {
	SalesCount   int64 `db:"sales_count" json:"sales_count"`
	TotalRevenue int64 `db:"total_revenue" json:"total_revenue"`
	RevenueToday int64 `db:"revenue_today" json:"revenue_today"`
	RevenueMonth int64 `db:"revenue_month" json:"revenue_month"`
}

// ProductSales ranks a listing by how often it sold.
type ProductSales struct {
	ListingID string `db:"shoe_id" json:"shoe_id"`
	Name      string `db:"shoe_name" json:"shoe_name"`
	SaleCount int64  `db:"sale_count" json:"sale_count"`
	Revenue   int64  `db:"revenue" json:"revenue"`
}

// CustomerSales ranks a buyer by purchases from one seller.
type CustomerSales struct {
	BuyerID    string `db:"buyer_id" json:"buyer_id"`
	FirstName  string `db:"first_name" json:"first_name"`
	LastName   string `db:"last_name" json:"last_name"`
	Purchases  int64  `db:"purchases" json:"purchases"`
	TotalSpent int64  `db:"total_spent" json:"total_spent"`
}
