package models

type Collection struct {
	ID                int64  `db:"id" json:"id"`
	Title             string `db:"title" json:"title"`
	FeaturedProductID *int64 `db:"featured_product_id" json:"featured_product_id"`
	ProductCount      int    `db:"product_count" json:"product_count"`
}

type CollectionRequest struct {
	Title             string `json:"title" validate:"required,max=255"`
	FeaturedProductID *int64 `json:"featured_product_id,omitempty" validate:"omitempty,gt=0"`
}
