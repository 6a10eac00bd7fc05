package api

import (
	"context"
	"encoding/json"
	"log/slog"

	"medimart/internal/domain/entity"
	domainerrors "medimart/internal/domain/errors"
)

// FetchMyOrders retrieves the signed-in customer's order history.
func (c *Client) FetchMyOrders(ctx context.Context, token string) ([]entity.Order, error) {
	resp, err := c.request(ctx, token).Get(epMyOrders)

	if err := c.decode(ctx, resp, err, nil); err != nil {
		return nil, err
	}

	return decodeOrderList(resp.Body()), nil
}

// GetOrder retrieves one order by id.
func (c *Client) GetOrder(ctx context.Context, token, orderID string) (*entity.Order, error) {
	resp, err := c.request(ctx, token).Get(epOrder(orderID))

	var envelope orderEnvelope
	if err := c.decode(ctx, resp, err, &envelope); err != nil {
		return nil, err
	}

	if envelope.Order != nil {
		order := envelope.Order.toEntity()

		return &order, nil
	}

	var bare orderDTO
	if jsonErr := json.Unmarshal(resp.Body(), &bare); jsonErr == nil && bare.value() != "" {
		order := bare.toEntity()

		return &order, nil
	}

	return nil, domainerrors.ErrMalformedResponse.WrapMessage("order response missing order")
}

// PlaceOrder submits a checkout draft and returns the created order.
func (c *Client) PlaceOrder(ctx context.Context, token string, draft entity.OrderDraft) (*entity.Order, error) {
	c.log(ctx).Info("Placing order",
		slog.Int("items", len(draft.Items)),
		slog.String("payment_method", draft.PaymentMethod))

	items := make([]map[string]any, 0, len(draft.Items))
	for _, item := range draft.Items {
		items = append(items, map[string]any{
			"productId": item.ProductID,
			"quantity":  item.Quantity,
			"unitPrice": item.UnitPrice,
		})
	}

	resp, err := c.request(ctx, token).
		SetBody(map[string]any{
			"items":           items,
			"shippingAddress": draft.ShippingAddress,
			"recipientName":   draft.RecipientName,
			"phone":           draft.Phone,
			"paymentMethod":   draft.PaymentMethod,
			"note":            draft.Note,
		}).
		Post(epOrders)

	var envelope orderEnvelope
	if err := c.decode(ctx, resp, err, &envelope); err != nil {
		return nil, err
	}

	if envelope.Order == nil {
		return nil, domainerrors.ErrMalformedResponse.WrapMessage("place order response missing order")
	}

	order := envelope.Order.toEntity()

	return &order, nil
}

// CancelOrder requests cancellation of a pending order and returns the server's
// acknowledgement message.
func (c *Client) CancelOrder(ctx context.Context, token, orderID, reason string) (string, error) {
	resp, err := c.request(ctx, token).
		SetBody(map[string]string{"reason": reason}).
		Post(epOrderCancel(orderID))

	var envelope messageEnvelope
	if err := c.decode(ctx, resp, err, &envelope); err != nil {
		return "", err
	}

	return envelope.Message, nil
}
