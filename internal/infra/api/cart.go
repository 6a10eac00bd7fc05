package api

import (
	"context"
	"encoding/json"

	"medimart/internal/domain/entity"
)

// FetchCart retrieves the authoritative server-side cart. Lines referencing
// a product that no longer resolves are dropped during mapping.
func (c *Client) FetchCart(ctx context.Context, token string) ([]entity.CartLine, error) {
	resp, err := c.request(ctx, token).Get(epCart)

	if err := c.decode(ctx, resp, err, nil); err != nil {
		return nil, err
	}

	var envelope cartEnvelope
	if jsonErr := json.Unmarshal(resp.Body(), &envelope); jsonErr != nil {
		return []entity.CartLine{}, nil
	}

	return mapCartLines(envelope.flatten()), nil
}

// AddCartItem puts quantity units of a product into the cart.
func (c *Client) AddCartItem(ctx context.Context, token, productID string, quantity int) error {
	resp, err := c.request(ctx, token).
		SetBody(map[string]any{"productId": productID, "quantity": quantity}).
		Post(epCartAddItem)

	return c.decode(ctx, resp, err, nil)
}

// UpdateCartItem sets the quantity of an existing cart line.
func (c *Client) UpdateCartItem(ctx context.Context, token, lineID string, quantity int) error {
	resp, err := c.request(ctx, token).
		SetBody(map[string]any{"quantity": quantity}).
		Put(epCartItem(lineID))

	return c.decode(ctx, resp, err, nil)
}

// RemoveCartItem deletes a cart line.
func (c *Client) RemoveCartItem(ctx context.Context, token, lineID string) error {
	resp, err := c.request(ctx, token).Delete(epCartItem(lineID))

	return c.decode(ctx, resp, err, nil)
}

// ClearCart empties the cart server-side.
func (c *Client) ClearCart(ctx context.Context, token string) error {
	resp, err := c.request(ctx, token).Delete(epCartClear)

	return c.decode(ctx, resp, err, nil)
}
