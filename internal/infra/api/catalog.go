package api

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"

	"medimart/internal/domain/entity"
	domainerrors "medimart/internal/domain/errors"
	"medimart/internal/domain/service"
)

// Products lists catalog entries matching the query.
func (c *Client) Products(ctx context.Context, query service.ProductQuery) ([]entity.Product, error) {
	req := c.request(ctx, "")
	if query.Search != "" {
		req.SetQueryParam("search", query.Search)
	}
	if query.Category != "" {
		req.SetQueryParam("category", query.Category)
	}
	if query.Page > 0 {
		req.SetQueryParam("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(query.Limit))
	}

	resp, err := req.Get(epProducts)

	if err := c.decode(ctx, resp, err, nil); err != nil {
		return nil, err
	}

	return decodeProductList(resp.Body()), nil
}

// Product retrieves one catalog entry by id.
func (c *Client) Product(ctx context.Context, productID string) (*entity.Product, error) {
	resp, err := c.request(ctx, "").Get(epProduct(productID))

	var envelope productEnvelope
	if err := c.decode(ctx, resp, err, &envelope); err != nil {
		return nil, err
	}

	if envelope.Product != nil {
		product := envelope.Product.toEntity()

		return &product, nil
	}

	var bare productDTO
	if jsonErr := json.Unmarshal(resp.Body(), &bare); jsonErr == nil && bare.value() != "" {
		product := bare.toEntity()

		return &product, nil
	}

	return nil, domainerrors.ErrMalformedResponse.WrapMessage("product response missing product")
}

// CreateReview posts a new review for a product.
func (c *Client) CreateReview(ctx context.Context, token string, draft entity.ReviewDraft) error {
	resp, err := c.request(ctx, token).
		SetBody(map[string]any{"rating": draft.Rating, "comment": draft.Comment}).
		Post(epProductReviews(draft.ProductID))

	return c.decode(ctx, resp, err, nil)
}

// UpdateReview replaces an existing review.
func (c *Client) UpdateReview(ctx context.Context, token string, draft entity.ReviewDraft) error {
	resp, err := c.request(ctx, token).
		SetBody(map[string]any{"rating": draft.Rating, "comment": draft.Comment}).
		Put(epProductReview(draft.ProductID, draft.ReviewID))

	return c.decode(ctx, resp, err, nil)
}

// DeleteReview removes a review.
func (c *Client) DeleteReview(ctx context.Context, token, productID, reviewID string) error {
	resp, err := c.request(ctx, token).Delete(epProductReview(productID, reviewID))

	return c.decode(ctx, resp, err, nil)
}

// SearchByImage uploads an image and returns visually similar products.
func (c *Client) SearchByImage(ctx context.Context, filename string, image []byte) ([]entity.Product, error) {
	resp, err := c.request(ctx, "").
		SetFileReader("image", filename, bytes.NewReader(image)).
		Post(epSearchByImage)

	if err := c.decode(ctx, resp, err, nil); err != nil {
		return nil, err
	}

	return decodeProductList(resp.Body()), nil
}
