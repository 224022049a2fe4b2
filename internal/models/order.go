package models

import (
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID              int64         `db:"id" json:"id"`
	CustomerID      int64         `db:"customer_id" json:"customer_id"`
	PlacedAt        time.Time     `db:"placed_at" json:"placed_at"`
	PaymentStatus   PaymentStatus `db:"payment_status" json:"payment_status"`
	PaymentIntentID *string       `db:"payment_intent_id" json:"-"`
	// owning user, resolved through customers for access checks
	UserID uuid.UUID   `db:"user_id" json:"-"`
	Items  []OrderItem `db:"-" json:"items"`
}

type OrderItem struct {
	ID        int64           `db:"id" json:"id"`
	OrderID   int64           `db:"order_id" json:"order_id"`
	ProductID int64           `db:"product_id" json:"product_id"`
	Quantity  int             `db:"quantity" json:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price" json:"unit_price"`
}

type CreateOrderRequest struct {
	CartUUID string `json:"cart_uuid" validate:"required,uuid"`
}

type UpdateOrderRequest struct {
	PaymentStatus PaymentStatus `json:"payment_status" validate:"required,oneof=P C F"`
}

type OrderItemResponse struct {
	ID         int64           `json:"id"`
	Product    int64           `json:"product"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type OrderResponse struct {
	ID                 int64               `json:"id"`
	Customer           int64               `json:"customer"`
	PlacedAt           time.Time           `json:"placed_at"`
	PaymentStatus      PaymentStatus       `json:"payment_status"`
	PaymentStatusLabel string              `json:"payment_status_label"`
	Items              []OrderItemResponse `json:"items"`
	TotalPrice         decimal.Decimal     `json:"total_price"`
}

func (o *Order) Lines() []pricing.Line {
	lines := make([]pricing.Line, 0, len(o.Items))
	for _, item := range o.Items {
		lines = append(lines, pricing.Line{UnitPrice: item.UnitPrice, Quantity: item.Quantity})
	}

	return lines
}

func (o *Order) Total() decimal.Decimal {
	return pricing.OrderTotal(o.Lines())
}

func NewOrderResponse(o *Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))

	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ID:         item.ID,
			Product:    item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: pricing.LineTotal(item.UnitPrice, item.Quantity),
		})
	}

	return &OrderResponse{
		ID:                 o.ID,
		Customer:           o.CustomerID,
		PlacedAt:           o.PlacedAt,
		PaymentStatus:      o.PaymentStatus,
		PaymentStatusLabel: o.PaymentStatus.Label(),
		Items:              items,
		TotalPrice:         o.Total(),
	}
}

func NewOrderResponses(orders []*Order) []*OrderResponse {
	responses := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, NewOrderResponse(o))
	}

	return responses
}
