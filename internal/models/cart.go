package models

import (
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Cart struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	Items     []CartItem `db:"-" json:"items"`
}

type CartItem struct {
	ID       int64         `json:"id"`
	CartID   uuid.UUID     `json:"-"`
	Product  SimpleProduct `json:"product"`
	Quantity int           `json:"quantity"`
}

type AddCartItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,min=1,max=32767"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1,max=32767"`
}

type CartItemResponse struct {
	ID         int64           `json:"id"`
	Product    SimpleProduct   `json:"product"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type CartResponse struct {
	ID         uuid.UUID          `json:"id"`
	CreatedAt  time.Time          `json:"created_at"`
	Items      []CartItemResponse `json:"items"`
	TotalPrice decimal.Decimal    `json:"total_price"`
}

func NewCartItemResponse(item *CartItem) *CartItemResponse {
	return &CartItemResponse{
		ID:         item.ID,
		Product:    item.Product,
		Quantity:   item.Quantity,
		TotalPrice: pricing.LineTotal(item.Product.UnitPrice, item.Quantity),
	}
}

func NewCartResponse(cart *Cart) *CartResponse {
	items := make([]CartItemResponse, 0, len(cart.Items))
	lines := make([]pricing.Line, 0, len(cart.Items))

	for i := range cart.Items {
		items = append(items, *NewCartItemResponse(&cart.Items[i]))
		lines = append(lines, pricing.Line{UnitPrice: cart.Items[i].Product.UnitPrice, Quantity: cart.Items[i].Quantity})
	}

	return &CartResponse{
		ID:         cart.ID,
		CreatedAt:  cart.CreatedAt,
		Items:      items,
		TotalPrice: pricing.CartTotal(lines),
	}
}
