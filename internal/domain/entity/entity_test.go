package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, NormalizeRole("ADMIN"))
	assert.Equal(t, RoleUser, NormalizeRole(" user "))
	assert.Equal(t, RoleUser, NormalizeRole("superuser"))
	assert.Equal(t, RoleUser, NormalizeRole(""))
}

func TestStackFor(t *testing.T) {
	assert.Equal(t, StackAnonymous, StackFor(nil))
	assert.Equal(t, StackAdmin, StackFor(&User{Role: RoleAdmin}))
	assert.Equal(t, StackRegular, StackFor(&User{Role: RoleUser}))
	assert.Equal(t, StackRegular, StackFor(&User{Role: Role("weird")}))
}

func TestOrderStatus_CanCancel(t *testing.T) {
	assert.True(t, OrderPending.CanCancel())
	assert.False(t, OrderProcessing.CanCancel())
	assert.False(t, OrderCompleted.CanCancel())
	assert.False(t, OrderCancelled.CanCancel())
}

func TestCartSubtotal(t *testing.T) {
	lines := []CartLine{
		{Price: 9.5, Quantity: 2},
		{Price: 4.25, Quantity: 4},
	}

	assert.InDelta(t, 36.0, CartSubtotal(lines), 0.0001)
	assert.Zero(t, CartSubtotal(nil))
}

func TestAddress_ShippingLine(t *testing.T) {
	address := Address{
		Address:  "1 Main St",
		Ward:     "Ward 4",
		District: "District 1",
		City:     "Springfield",
	}

	assert.Equal(t, "1 Main St, Ward 4, District 1, Springfield", address.ShippingLine())
}

func TestSession_Authenticated(t *testing.T) {
	assert.False(t, Session{}.Authenticated())
	assert.False(t, Session{Token: "tok"}.Authenticated())
	assert.False(t, Session{User: &User{ID: "u-1"}}.Authenticated())
	assert.True(t, Session{User: &User{ID: "u-1"}, Token: "tok"}.Authenticated())
}
