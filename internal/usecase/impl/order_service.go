package impl

import (
	"context"
	"log/slog"

	"medimart/internal/domain/entity"
	domainerrors "medimart/internal/domain/errors"
	"medimart/internal/domain/service"
	"medimart/internal/usecase"

	"github.com/go-playground/validator/v10"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	store    service.SessionStore
	orders   service.OrderAPI
	carts    service.CartAPI
	validate *validator.Validate
	logger   *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	store service.SessionStore,
	orders service.OrderAPI,
	carts service.CartAPI,
	validate *validator.Validate,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		store:    store,
		orders:   orders,
		carts:    carts,
		validate: validate,
		logger:   logger,
	}
}

// FetchMyOrders returns the customer's order history.
func (srv *orderService) FetchMyOrders(ctx context.Context) []entity.Order {
	token, ok := sessionToken(srv.store)
	if !ok {
		return []entity.Order{}
	}

	orders, err := srv.orders.FetchMyOrders(ctx, token)
	if err != nil {
		srv.logger.Warn("Order history fetch failed", "error", err)
		srv.store.SetLastError(domainerrors.MessageOf(err, "Failed to load orders."))

		return []entity.Order{}
	}

	return orders
}

// GetOrder returns a single order, or nil when it cannot be loaded.
func (srv *orderService) GetOrder(ctx context.Context, orderID string) *entity.Order {
	token, ok := sessionToken(srv.store)
	if !ok {
		return nil
	}

	order, err := srv.orders.GetOrder(ctx, token, orderID)
	if err != nil {
		srv.logger.Warn("Order fetch failed", "orderID", orderID, "error", err)
		srv.store.SetLastError(domainerrors.MessageOf(err, "Failed to load order."))

		return nil
	}

	return order
}

// PlaceOrder submits checkout. The server empties the cart as part of order
// creation, so a successful placement is followed by a cart resync.
func (srv *orderService) PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) usecase.PlaceOrderResult {
	token, ok := sessionToken(srv.store)
	if !ok {
		return usecase.PlaceOrderResult{Result: usecase.Fail(usecase.MsgPleaseLogIn)}
	}

	if err := srv.validate.Struct(input); err != nil {
		srv.logger.Debug("Checkout input rejected", "error", err)

		return usecase.PlaceOrderResult{Result: usecase.Fail(domainerrors.ErrValidationFailed.Message())}
	}

	draft := entity.OrderDraft{
		Items:           input.Items,
		ShippingAddress: input.ShippingAddress,
		RecipientName:   input.RecipientName,
		Phone:           input.Phone,
		PaymentMethod:   input.PaymentMethod,
		Note:            input.Note,
	}

	order, err := srv.orders.PlaceOrder(ctx, token, draft)
	if err != nil {
		srv.logger.Warn("Order placement failed", "error", err)

		return usecase.PlaceOrderResult{Result: srv.fail(err, "Failed to place order.")}
	}

	srv.resyncCart(ctx, token)

	srv.logger.Info("Order placed", "orderID", order.ID)

	return usecase.PlaceOrderResult{
		Result:  usecase.OK("Order placed successfully."),
		OrderID: order.ID,
	}
}

// CancelOrder cancels a pending order. The acknowledgement message is
// canonical; whatever the server said on success is not surfaced.
func (srv *orderService) CancelOrder(ctx context.Context, orderID, reason string) usecase.Result {
	token, ok := sessionToken(srv.store)
	if !ok {
		return usecase.Fail(usecase.MsgPleaseLogIn)
	}

	if _, err := srv.orders.CancelOrder(ctx, token, orderID, reason); err != nil {
		srv.logger.Warn("Order cancellation failed", "orderID", orderID, "error", err)

		return srv.fail(err, "Failed to cancel order.")
	}

	return usecase.OK(usecase.MsgOrderCancelled)
}

func (srv *orderService) resyncCart(ctx context.Context, token string) {
	lines, err := srv.carts.FetchCart(ctx, token)
	if err != nil {
		srv.logger.Warn("Cart resync failed", "error", err)

		return
	}

	srv.store.SetCart(lines)
}

func (srv *orderService) fail(err error, fallback string) usecase.Result {
	message := domainerrors.MessageOf(err, fallback)
	srv.store.SetLastError(message)

	return usecase.Fail(message)
}
