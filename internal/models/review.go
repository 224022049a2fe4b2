package models

import "time"

type Review struct {
	ID          int64     `db:"id" json:"id"`
	ProductID   int64     `db:"product_id" json:"product_id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Date        time.Time `db:"date" json:"date"`
}

type ReviewRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
}
