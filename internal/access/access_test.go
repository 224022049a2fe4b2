package access_test

import (
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/access"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var (
	anonymous = access.Anonymous()
	customer  = access.Identity{UserID: uuid.New(), Authenticated: true}
	staff     = access.Identity{UserID: uuid.New(), Authenticated: true, IsStaff: true}
	allOps    = []access.Operation{access.OpList, access.OpRead, access.OpCreate, access.OpUpdate, access.OpDelete}
)

func TestCan(t *testing.T) {
	tests := []struct {
		name     string
		resource access.Resource
		// expected result per operation, in allOps order
		anonymous []bool
		customer  []bool
		staff     []bool
	}{
		{
			name:      "Collections",
			resource:  access.ResourceCollection,
			anonymous: []bool{true, true, false, false, false},
			customer:  []bool{true, true, false, false, false},
			staff:     []bool{true, true, true, true, true},
		},
		{
			name:      "Products",
			resource:  access.ResourceProduct,
			anonymous: []bool{true, true, false, false, false},
			customer:  []bool{true, true, false, false, false},
			staff:     []bool{true, true, true, true, true},
		},
		{
			name:      "Promotions",
			resource:  access.ResourcePromotion,
			anonymous: []bool{true, true, false, false, false},
			customer:  []bool{true, true, false, false, false},
			staff:     []bool{true, true, true, true, true},
		},
		{
			name:      "Reviews",
			resource:  access.ResourceReview,
			anonymous: []bool{true, true, true, false, false},
			customer:  []bool{true, true, true, false, false},
			staff:     []bool{true, true, true, true, true},
		},
		{
			name:      "Carts",
			resource:  access.ResourceCart,
			anonymous: []bool{true, true, true, true, true},
			customer:  []bool{true, true, true, true, true},
			staff:     []bool{true, true, true, true, true},
		},
		{
			name:      "Customers",
			resource:  access.ResourceCustomer,
			anonymous: []bool{false, false, false, false, false},
			customer:  []bool{false, false, false, false, false},
			staff:     []bool{true, true, true, true, true},
		},
		{
			name:      "Profile",
			resource:  access.ResourceProfile,
			anonymous: []bool{false, false, false, false, false},
			customer:  []bool{true, true, true, true, true},
			staff:     []bool{true, true, true, true, true},
		},
		{
			name:      "Orders",
			resource:  access.ResourceOrder,
			anonymous: []bool{false, false, false, false, false},
			customer:  []bool{true, true, true, false, false},
			staff:     []bool{true, true, true, true, true},
		},
		{
			name:      "Payments",
			resource:  access.ResourcePayment,
			anonymous: []bool{false, false, false, false, false},
			customer:  []bool{false, false, true, false, false},
			staff:     []bool{false, false, true, false, false},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for i, op := range allOps {
				assert.Equal(t, tc.anonymous[i], access.Can(anonymous, op, tc.resource), "anonymous %s", op)
				assert.Equal(t, tc.customer[i], access.Can(customer, op, tc.resource), "customer %s", op)
				assert.Equal(t, tc.staff[i], access.Can(staff, op, tc.resource), "staff %s", op)
			}
		})
	}

	t.Run("Unknown resource is denied", func(t *testing.T) {
		assert.False(t, access.Can(staff, access.OpRead, access.Resource("invoice")))
	})
}

func TestCanSeeOrder(t *testing.T) {
	assert.True(t, access.CanSeeOrder(customer, customer.UserID))
	assert.False(t, access.CanSeeOrder(customer, uuid.New()))
	assert.True(t, access.CanSeeOrder(staff, uuid.New()))
	assert.False(t, access.CanSeeOrder(anonymous, uuid.Nil))
}

func TestFromClaims(t *testing.T) {
	assert.Equal(t, access.Anonymous(), access.FromClaims(nil))

	userID := uuid.New()
	id := access.FromClaims(&models.Claims{UserID: userID, IsStaff: true})

	assert.True(t, id.Authenticated)
	assert.True(t, id.IsStaff)
	assert.Equal(t, userID, id.UserID)
}
