package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicate          = errors.New("duplicate record")
	ErrReferenced         = errors.New("record is still referenced")
	ErrCartNotFound       = errors.New("cart not found")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrProductNotFound    = errors.New("product not found")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrPromotionNotFound  = errors.New("promotion not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrOutOfRange         = errors.New("value out of range")
)

const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
	pqCheckViolation      = "23514"
	pqNumericOutOfRange   = "22003"
)

// parent row each foreign key points at, for inserts and updates that
// reference a row that does not exist
var missingReference = map[string]error{
	"products_collection_id_fkey":          ErrCollectionNotFound,
	"product_promotions_promotion_id_fkey": ErrPromotionNotFound,
	"collections_featured_product_id_fkey": ErrProductNotFound,
	"cart_items_product_id_fkey":           ErrProductNotFound,
	"cart_items_cart_id_fkey":              ErrCartNotFound,
	"customers_user_id_fkey":               ErrUserNotFound,
	"addresses_customer_id_fkey":           ErrNotFound,
}

// translateError maps constraint violations raised by inserts and updates
// to repository sentinels. Other errors are returned unchanged.
func translateError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case pqUniqueViolation:
		return errors.Join(ErrDuplicate, err)
	case pqNumericOutOfRange, pqCheckViolation:
		return errors.Join(ErrOutOfRange, err)
	case pqForeignKeyViolation:
		if sentinel, ok := missingReference[pqErr.Constraint]; ok {
			return errors.Join(sentinel, err)
		}

		return errors.Join(ErrNotFound, err)
	}

	return err
}

// translateDeleteError reports a delete blocked by a RESTRICT reference as
// ErrReferenced.
func translateDeleteError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
		return errors.Join(ErrReferenced, err)
	}

	return err
}
