package models

type Promotion struct {
	ID          int64   `db:"id" json:"id"`
	Description string  `db:"description" json:"description"`
	Discount    float64 `db:"discount" json:"discount"`
}

type CreatePromotionRequest struct {
	Description string  `json:"description" validate:"required,max=255"`
	Discount    float64 `json:"discount" validate:"gte=0"`
}
