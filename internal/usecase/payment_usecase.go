package usecase

import "context"

// PaymentLinkResult extends Result with the hosted checkout URL returned
// by the payment provider.
type PaymentLinkResult struct {
	Result
	CheckoutURL string
}

// PaymentUsecase creates hosted checkout sessions for placed orders.
type PaymentUsecase interface {
	// CreatePaymentLink requests a checkout URL for an order.
	CreatePaymentLink(ctx context.Context, orderID string, amount float64) PaymentLinkResult
}
