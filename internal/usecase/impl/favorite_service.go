package impl

import (
	"context"
	"log/slog"

	"medimart/internal/domain/entity"
	domainerrors "medimart/internal/domain/errors"
	"medimart/internal/domain/service"
	"medimart/internal/usecase"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	store     service.SessionStore
	favorites service.FavoriteAPI
	logger    *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(
	store service.SessionStore,
	favorites service.FavoriteAPI,
	logger *slog.Logger,
) usecase.FavoriteUsecase {
	return &favoriteService{
		store:     store,
		favorites: favorites,
		logger:    logger,
	}
}

// FetchFavorites lists the customer's favorited products.
func (srv *favoriteService) FetchFavorites(ctx context.Context) []entity.Product {
	token, ok := sessionToken(srv.store)
	if !ok {
		return []entity.Product{}
	}

	products, err := srv.favorites.FetchFavorites(ctx, token)
	if err != nil {
		srv.logger.Warn("Favorites fetch failed", "error", err)
		srv.store.SetLastError(domainerrors.MessageOf(err, "Failed to load favorites."))

		return []entity.Product{}
	}

	return products
}

// ToggleFavorite flips the favorite state of a product.
func (srv *favoriteService) ToggleFavorite(ctx context.Context, productID string) usecase.Result {
	token, ok := sessionToken(srv.store)
	if !ok {
		return usecase.Fail(usecase.MsgPleaseLogIn)
	}

	favorited, err := srv.favorites.ToggleFavorite(ctx, token, productID)
	if err != nil {
		srv.logger.Warn("Favorite toggle failed", "productID", productID, "error", err)

		return srv.fail(err, "Failed to update favorites.")
	}

	if favorited {
		return usecase.OK("Added to favorites")
	}

	return usecase.OK("Removed from favorites")
}

// AddFavorite marks a product as favorite.
func (srv *favoriteService) AddFavorite(ctx context.Context, productID string) usecase.Result {
	token, ok := sessionToken(srv.store)
	if !ok {
		return usecase.Fail(usecase.MsgPleaseLogIn)
	}

	if err := srv.favorites.AddFavorite(ctx, token, productID); err != nil {
		srv.logger.Warn("Favorite add failed", "productID", productID, "error", err)

		return srv.fail(err, "Failed to update favorites.")
	}

	return usecase.OK("Added to favorites")
}

// RemoveFavorite unmarks a product.
func (srv *favoriteService) RemoveFavorite(ctx context.Context, productID string) usecase.Result {
	token, ok := sessionToken(srv.store)
	if !ok {
		return usecase.Fail(usecase.MsgPleaseLogIn)
	}

	if err := srv.favorites.RemoveFavorite(ctx, token, productID); err != nil {
		srv.logger.Warn("Favorite removal failed", "productID", productID, "error", err)

		return srv.fail(err, "Failed to update favorites.")
	}

	return usecase.OK("Removed from favorites")
}

func (srv *favoriteService) fail(err error, fallback string) usecase.Result {
	message := domainerrors.MessageOf(err, fallback)
	srv.store.SetLastError(message)

	return usecase.Fail(message)
}
