package api

import (
	"context"

	"medimart/internal/domain/entity"
	domainerrors "medimart/internal/domain/errors"
)

// CreatePaymentLink asks the payment endpoint for a hosted checkout URL.
func (c *Client) CreatePaymentLink(ctx context.Context, token, orderID string, amount float64) (*entity.PaymentLink, error) {
	resp, err := c.request(ctx, token).
		SetBody(map[string]any{
			"orderId": orderID,
			"amount":  amount,
		}).
		Post(epCreatePaymentLink)

	var envelope paymentLinkEnvelope
	if err := c.decode(ctx, resp, err, &envelope); err != nil {
		return nil, err
	}

	checkoutURL := envelope.url()
	if checkoutURL == "" {
		return nil, domainerrors.ErrMalformedResponse.WrapMessage("payment link missing checkout url")
	}

	return &entity.PaymentLink{OrderID: orderID, CheckoutURL: checkoutURL}, nil
}
