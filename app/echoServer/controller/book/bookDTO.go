package book

import "github.com/shopspring/decimal"

type CreateBookReq struct {
	Title         string          `json:"title" validate:"required,max=200"`
	AuthorID      int64           `json:"author_id" validate:"required,gt=0"`
	Isbn          *string         `json:"isbn,omitempty" validate:"omitempty,max=20"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	Pages         *int64          `json:"pages,omitempty" validate:"omitempty,gt=0"`
	StockQuantity int64           `json:"stock_quantity" validate:"gte=0"`
}

type UpdateBookReq struct {
	ID            int64           `json:"id" validate:"required,gt=0"`
	Title         string          `json:"title" validate:"required,max=200"`
	AuthorID      int64           `json:"author_id" validate:"required,gt=0"`
	Isbn          *string         `json:"isbn,omitempty" validate:"omitempty,max=20"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	Pages         *int64          `json:"pages,omitempty" validate:"omitempty,gt=0"`
	StockQuantity int64           `json:"stock_quantity" validate:"gte=0"`
	IsAvailable   bool            `json:"is_available"`
}
