package order

type CreateOrderItemReq struct {
	BookID   int64 `json:"book_id" validate:"required,gt=0"`
	Quantity int64 `json:"quantity" validate:"required,gte=1,lte=100"`
}

type CreateOrderReq struct {
	ShippingAddress string               `json:"shipping_address" validate:"required,max=255"`
	OrderItems      []CreateOrderItemReq `json:"order_items" validate:"required,min=1,dive"`
}

type UpdateOrderStatusReq struct {
	StatusID int64 `json:"status_id" validate:"required,gt=0"`
}
