package model

import "github.com/shopspring/decimal"

type Book struct {
	ID            int64           `json:"id"`
	Title         string          `json:"title"`
	AuthorID      int64           `json:"author_id"`
	AuthorName    string          `json:"author_name,omitempty"`
	Isbn          *string         `json:"isbn,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Pages         *int64          `json:"pages,omitempty"`
	StockQuantity int64           `json:"stock_quantity"`
	IsAvailable   bool            `json:"is_available"`
}
