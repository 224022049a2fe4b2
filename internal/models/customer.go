package models

import "github.com/google/uuid"

type Customer struct {
	ID         int64      `db:"id" json:"id"`
	UserID     uuid.UUID  `db:"user_id" json:"user_id"`
	Phone      string     `db:"phone" json:"phone"`
	BirthDate  *Date      `db:"birth_date" json:"birth_date"`
	Membership Membership `db:"membership" json:"membership"`
}

type CreateCustomerRequest struct {
	UserID     uuid.UUID  `json:"user_id" validate:"required"`
	Phone      string     `json:"phone" validate:"required,max=255"`
	BirthDate  *Date      `json:"birth_date,omitempty"`
	Membership Membership `json:"membership,omitempty" validate:"omitempty,oneof=B S G"`
}

type UpdateCustomerRequest struct {
	Phone      string     `json:"phone" validate:"required,max=255"`
	BirthDate  *Date      `json:"birth_date,omitempty"`
	Membership Membership `json:"membership" validate:"required,oneof=B S G"`
}

// UpdateProfileRequest is what a customer may change about themselves.
type UpdateProfileRequest struct {
	Phone     string `json:"phone" validate:"required,max=255"`
	BirthDate *Date  `json:"birth_date,omitempty"`
}

type CustomerResponse struct {
	ID              int64      `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	Phone           string     `json:"phone"`
	BirthDate       *Date      `json:"birth_date"`
	Membership      Membership `json:"membership"`
	MembershipLabel string     `json:"membership_label"`
}

func NewCustomerResponse(c *Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:              c.ID,
		UserID:          c.UserID,
		Phone:           c.Phone,
		BirthDate:       c.BirthDate,
		Membership:      c.Membership,
		MembershipLabel: c.Membership.Label(),
	}
}

type Address struct {
	ID         int64  `db:"id" json:"id"`
	CustomerID int64  `db:"customer_id" json:"customer_id"`
	Street     string `db:"street" json:"street"`
	City       string `db:"city" json:"city"`
}

type AddressRequest struct {
	Street string `json:"street" validate:"required,max=255"`
	City   string `json:"city" validate:"required,max=255"`
}
