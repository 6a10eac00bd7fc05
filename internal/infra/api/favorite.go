package api

import (
	"context"

	"medimart/internal/domain/entity"
)

// FetchFavorites retrieves the customer's favorite products.
func (c *Client) FetchFavorites(ctx context.Context, token string) ([]entity.Product, error) {
	resp, err := c.request(ctx, token).Get(epFavorites)

	if err := c.decode(ctx, resp, err, nil); err != nil {
		return nil, err
	}

	return decodeProductList(resp.Body()), nil
}

// ToggleFavorite flips a product's favorite status and reports the resulting state.
func (c *Client) ToggleFavorite(ctx context.Context, token, productID string) (bool, error) {
	resp, err := c.request(ctx, token).Post(epFavoriteToggle(productID))

	var envelope toggleEnvelope
	if err := c.decode(ctx, resp, err, &envelope); err != nil {
		return false, err
	}

	return envelope.state(), nil
}

// AddFavorite marks a product as a favorite.
func (c *Client) AddFavorite(ctx context.Context, token, productID string) error {
	resp, err := c.request(ctx, token).Post(epFavorite(productID))

	return c.decode(ctx, resp, err, nil)
}

// RemoveFavorite unmarks a favorite product.
func (c *Client) RemoveFavorite(ctx context.Context, token, productID string) error {
	resp, err := c.request(ctx, token).Delete(epFavorite(productID))

	return c.decode(ctx, resp, err, nil)
}
