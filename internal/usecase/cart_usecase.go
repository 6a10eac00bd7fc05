package usecase

import (
	"context"

	"medimart/internal/domain/entity"
)

// CartUsecase maintains the read-through cart mirror. The server copy is
// authoritative: every mutation is followed by a full refetch rather than a
// locally computed update, so the mirror can lag but never drift.
type CartUsecase interface {
	// FetchCart resynchronizes the mirror from the server and returns it.
	// Returns an empty slice when anonymous or on any failure.
	FetchCart(ctx context.Context) []entity.CartLine

	// AddToCart puts quantity units of a product into the cart.
	// Without a session it fails with MsgPleaseLogIn and no network call.
	AddToCart(ctx context.Context, product entity.Product, quantity int) Result

	// UpdateCartItemQuantity sets a line's quantity. A non-positive
	// quantity removes the line; a zero-quantity line is never kept.
	UpdateCartItemQuantity(ctx context.Context, lineID string, quantity int) Result

	// RemoveCartItem deletes a line.
	RemoveCartItem(ctx context.Context, lineID string) Result

	// ClearCart empties the cart.
	ClearCart(ctx context.Context) Result
}
