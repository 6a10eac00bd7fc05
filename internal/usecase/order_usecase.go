package usecase

import (
	"context"

	"medimart/internal/domain/entity"
)

// PlaceOrderInput carries everything checkout needs to submit an order.
type PlaceOrderInput struct {
	Items           []entity.OrderItem `validate:"required,min=1"`
	ShippingAddress string             `validate:"required"`
	RecipientName   string             `validate:"required"`
	Phone           string             `validate:"required"`
	PaymentMethod   string             `validate:"required"`
	Note            string
}

// PlaceOrderResult extends Result with the identifier of the created order
// so checkout can hand off to payment.
type PlaceOrderResult struct {
	Result
	OrderID string
}

// OrderUsecase covers order history and checkout.
type OrderUsecase interface {
	// FetchMyOrders returns the customer's order history, newest first as
	// the server sends it. Empty slice when anonymous or on failure.
	FetchMyOrders(ctx context.Context) []entity.Order

	// GetOrder returns a single order, or nil when it cannot be loaded.
	GetOrder(ctx context.Context, orderID string) *entity.Order

	// PlaceOrder submits a new order.
	PlaceOrder(ctx context.Context, input PlaceOrderInput) PlaceOrderResult

	// CancelOrder cancels a pending order. The reason is optional and
	// forwarded to the server as supplied.
	CancelOrder(ctx context.Context, orderID, reason string) Result
}
