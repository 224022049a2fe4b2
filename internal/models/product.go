package models

import (
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/pricing"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID           int64           `db:"id" json:"id"`
	Title        string          `db:"title" json:"title"`
	Slug         string          `db:"slug" json:"slug"`
	Description  *string         `db:"description" json:"description"`
	UnitPrice    decimal.Decimal `db:"unit_price" json:"unit_price"`
	Inventory    int             `db:"inventory" json:"inventory"`
	CollectionID int64           `db:"collection_id" json:"collection_id"`
	Promotions   pq.Int64Array   `db:"promotions" json:"promotions"`
	LastUpdated  time.Time       `db:"last_updated" json:"last_updated"`
}

// SimpleProduct is the product summary nested in cart items.
type SimpleProduct struct {
	ID        int64           `db:"id" json:"id"`
	Title     string          `db:"title" json:"title"`
	UnitPrice decimal.Decimal `db:"unit_price" json:"unit_price"`
}

// ProductRequest is the body of POST /products and PUT /products/{id}.
// A nil Promotions slice leaves the product's promotions untouched.
type ProductRequest struct {
	Title       string           `json:"title" validate:"required,max=255"`
	Slug        string           `json:"slug" validate:"omitempty,max=255"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Inventory   *int             `json:"inventory" validate:"required,gte=0"`
	Collection  int64            `json:"collection" validate:"required,gt=0"`
	Promotions  []int64          `json:"promotions" validate:"omitempty,dive,gt=0"`
}

type UpdateProductRequest struct {
	Title       *string          `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Slug        *string          `json:"slug,omitempty" validate:"omitempty,max=255"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Inventory   *int             `json:"inventory,omitempty" validate:"omitempty,gte=0"`
	Collection  *int64           `json:"collection,omitempty" validate:"omitempty,gt=0"`
	Promotions  []int64          `json:"promotions,omitempty" validate:"omitempty,dive,gt=0"`
}

type ProductFilter struct {
	CollectionID *int64
	Search       string
	Ordering     string
	Page         int
	PageSize     int
}

type ProductResponse struct {
	ID              int64           `json:"id"`
	Title           string          `json:"title"`
	Slug            string          `json:"slug"`
	Description     *string         `json:"description"`
	Inventory       int             `json:"inventory"`
	InventoryStatus string          `json:"inventory_status"`
	Price           decimal.Decimal `json:"price"`
	PriceWithTax    decimal.Decimal `json:"price_with_tax"`
	Collection      int64           `json:"collection"`
	Promotions      []int64         `json:"promotions"`
	LastUpdated     time.Time       `json:"last_updated"`
}

func NewProductResponse(p *Product) *ProductResponse {
	promotions := []int64(p.Promotions)
	if promotions == nil {
		promotions = []int64{}
	}

	return &ProductResponse{
		ID:              p.ID,
		Title:           p.Title,
		Slug:            p.Slug,
		Description:     p.Description,
		Inventory:       p.Inventory,
		InventoryStatus: pricing.InventoryStatus(p.Inventory),
		Price:           p.UnitPrice,
		PriceWithTax:    pricing.PriceWithTax(p.UnitPrice),
		Collection:      p.CollectionID,
		Promotions:      promotions,
		LastUpdated:     p.LastUpdated,
	}
}
