package usecase

import (
	"context"
	"io"

	"medimart/internal/domain/entity"
	"medimart/internal/domain/service"
)

// CatalogUsecase exposes product browsing, reviews, and image search.
// Reads are anonymous-friendly; only review writes require a session.
type CatalogUsecase interface {
	// Products lists products matching the query. Empty slice on failure.
	Products(ctx context.Context, query service.ProductQuery) []entity.Product

	// Product returns one product with its reviews, or nil when it cannot
	// be loaded.
	Product(ctx context.Context, productID string) *entity.Product

	// SubmitReview creates or updates the customer's review depending on
	// draft.IsUpdate.
	SubmitReview(ctx context.Context, productID string, draft entity.ReviewDraft) Result

	// DeleteReview removes the customer's review.
	DeleteReview(ctx context.Context, productID, reviewID string) Result

	// SearchByImage uploads a photo and returns visually similar products.
	// Empty slice on failure.
	SearchByImage(ctx context.Context, filename string, image io.Reader) []entity.Product
}
