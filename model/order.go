package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the hydrated read shape: customer, status, and per-item
// book/author display fields are resolved by the repository's joined reads.
type Order struct {
	ID              int64           `json:"id"`
	CustomerID      int64           `json:"customer_id"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email"`
	OrderDate       time.Time       `json:"order_date"`
	ShippingAddress string          `json:"shipping_address"`
	StatusID        int64           `json:"status_id"`
	StatusName      string          `json:"status_name"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Items           []OrderItem     `json:"order_items"`
}

type OrderItem struct {
	ID         int64           `json:"id"`
	BookID     int64           `json:"book_id"`
	BookTitle  string          `json:"book_title"`
	AuthorName string          `json:"author_name"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type Status struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
