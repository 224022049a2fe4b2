// Package access decides whether an identity may perform an operation on a
// resource. Every route's permission check goes through Can.
package access

import (
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
)

type Operation string

const (
	OpList   Operation = "list"
	OpRead   Operation = "read"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

type Resource string

const (
	ResourceCollection Resource = "collection"
	ResourceProduct    Resource = "product"
	ResourcePromotion  Resource = "promotion"
	ResourceReview     Resource = "review"
	ResourceCart       Resource = "cart"
	ResourceCustomer   Resource = "customer"
	ResourceProfile    Resource = "profile"
	ResourceOrder      Resource = "order"
	ResourcePayment    Resource = "payment"
)

type Identity struct {
	UserID        uuid.UUID
	Authenticated bool
	IsStaff       bool
}

func Anonymous() Identity {
	return Identity{}
}

// FromClaims returns the anonymous identity for nil claims.
func FromClaims(claims *models.Claims) Identity {
	if claims == nil {
		return Anonymous()
	}

	return Identity{UserID: claims.UserID, Authenticated: true, IsStaff: claims.IsStaff}
}

type rule func(id Identity, op Operation) bool

var policy = map[Resource]rule{
	ResourceCollection: publicReadStaffWrite,
	ResourceProduct:    publicReadStaffWrite,
	ResourcePromotion:  publicReadStaffWrite,
	ResourceReview: func(id Identity, op Operation) bool {
		return isRead(op) || op == OpCreate || id.IsStaff
	},
	ResourceCart: func(Identity, Operation) bool {
		return true
	},
	ResourceCustomer: func(id Identity, _ Operation) bool {
		return id.IsStaff
	},
	ResourceProfile: func(id Identity, _ Operation) bool {
		return id.Authenticated
	},
	ResourceOrder: func(id Identity, op Operation) bool {
		if op == OpUpdate || op == OpDelete {
			return id.IsStaff
		}

		return id.Authenticated
	},
	ResourcePayment: func(id Identity, op Operation) bool {
		return op == OpCreate && id.Authenticated
	},
}

func Can(id Identity, op Operation, res Resource) bool {
	allow, ok := policy[res]
	if !ok {
		return false
	}

	return allow(id, op)
}

// CanSeeOrder holds for staff and for the user who placed the order.
func CanSeeOrder(id Identity, ownerUserID uuid.UUID) bool {
	if !id.Authenticated {
		return false
	}

	return id.IsStaff || id.UserID == ownerUserID
}

func publicReadStaffWrite(id Identity, op Operation) bool {
	return isRead(op) || id.IsStaff
}

func isRead(op Operation) bool {
	return op == OpList || op == OpRead
}
