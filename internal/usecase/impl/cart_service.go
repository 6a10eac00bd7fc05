package impl

import (
	"context"
	"log/slog"

	"medimart/internal/domain/entity"
	domainerrors "medimart/internal/domain/errors"
	"medimart/internal/domain/service"
	"medimart/internal/usecase"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	store  service.SessionStore
	carts  service.CartAPI
	logger *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	store service.SessionStore,
	carts service.CartAPI,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		store:  store,
		carts:  carts,
		logger: logger,
	}
}

// FetchCart resynchronizes the cart mirror from the server.
func (srv *cartService) FetchCart(ctx context.Context) []entity.CartLine {
	token, ok := sessionToken(srv.store)
	if !ok {
		return []entity.CartLine{}
	}

	lines, err := srv.carts.FetchCart(ctx, token)
	if err != nil {
		srv.logger.Warn("Cart fetch failed", "error", err)
		srv.store.SetLastError(domainerrors.MessageOf(err, "Failed to load cart."))

		return []entity.CartLine{}
	}

	srv.store.SetCart(lines)

	return lines
}

// AddToCart puts quantity units of a product into the cart.
func (srv *cartService) AddToCart(ctx context.Context, product entity.Product, quantity int) usecase.Result {
	token, ok := sessionToken(srv.store)
	if !ok {
		return usecase.Fail(usecase.MsgPleaseLogIn)
	}

	if quantity < 1 {
		quantity = 1
	}

	if err := srv.carts.AddCartItem(ctx, token, product.ID, quantity); err != nil {
		srv.logger.Warn("Add to cart failed", "productID", product.ID, "error", err)

		return srv.fail(err, "Failed to add item to cart.")
	}

	srv.resync(ctx, token)

	return usecase.OK("Added to cart")
}

// UpdateCartItemQuantity sets a line's quantity. A non-positive quantity is
// a removal, never a zero-quantity line.
func (srv *cartService) UpdateCartItemQuantity(ctx context.Context, lineID string, quantity int) usecase.Result {
	if quantity <= 0 {
		return srv.RemoveCartItem(ctx, lineID)
	}

	token, ok := sessionToken(srv.store)
	if !ok {
		return usecase.Fail(usecase.MsgPleaseLogIn)
	}

	if err := srv.carts.UpdateCartItem(ctx, token, lineID, quantity); err != nil {
		srv.logger.Warn("Cart update failed", "lineID", lineID, "error", err)

		return srv.fail(err, "Failed to update cart.")
	}

	srv.resync(ctx, token)

	return usecase.OK("Cart updated")
}

// RemoveCartItem deletes a line.
func (srv *cartService) RemoveCartItem(ctx context.Context, lineID string) usecase.Result {
	token, ok := sessionToken(srv.store)
	if !ok {
		return usecase.Fail(usecase.MsgPleaseLogIn)
	}

	if err := srv.carts.RemoveCartItem(ctx, token, lineID); err != nil {
		srv.logger.Warn("Cart removal failed", "lineID", lineID, "error", err)

		return srv.fail(err, "Failed to remove item from cart.")
	}

	srv.resync(ctx, token)

	return usecase.OK("Item removed from cart")
}

// ClearCart empties the cart.
func (srv *cartService) ClearCart(ctx context.Context) usecase.Result {
	token, ok := sessionToken(srv.store)
	if !ok {
		return usecase.Fail(usecase.MsgPleaseLogIn)
	}

	if err := srv.carts.ClearCart(ctx, token); err != nil {
		srv.logger.Warn("Cart clear failed", "error", err)

		return srv.fail(err, "Failed to clear cart.")
	}

	srv.resync(ctx, token)

	return usecase.OK("Cart cleared")
}

// resync refetches the server cart after a mutation. The server copy is
// authoritative, so the mirror is rebuilt rather than patched locally; a
// failed refetch keeps the previous mirror until the next sync.
func (srv *cartService) resync(ctx context.Context, token string) {
	lines, err := srv.carts.FetchCart(ctx, token)
	if err != nil {
		srv.logger.Warn("Cart resync failed", "error", err)

		return
	}

	srv.store.SetCart(lines)
}

func (srv *cartService) fail(err error, fallback string) usecase.Result {
	message := domainerrors.MessageOf(err, fallback)
	srv.store.SetLastError(message)

	return usecase.Fail(message)
}
