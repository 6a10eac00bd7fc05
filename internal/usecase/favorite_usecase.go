package usecase

import (
	"context"

	"medimart/internal/domain/entity"
)

// FavoriteUsecase manages the customer's wishlist.
type FavoriteUsecase interface {
	// FetchFavorites lists favorited products. Empty slice when anonymous
	// or on failure.
	FetchFavorites(ctx context.Context) []entity.Product

	// ToggleFavorite flips the favorite state of a product. On success the
	// Result message reflects the resulting state.
	ToggleFavorite(ctx context.Context, productID string) Result

	// AddFavorite marks a product as favorite.
	AddFavorite(ctx context.Context, productID string) Result

	// RemoveFavorite unmarks a product.
	RemoveFavorite(ctx context.Context, productID string) Result
}
