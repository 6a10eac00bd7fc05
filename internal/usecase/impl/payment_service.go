package impl

import (
	"context"
	"log/slog"

	domainerrors "medimart/internal/domain/errors"
	"medimart/internal/domain/service"
	"medimart/internal/usecase"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	store    service.SessionStore
	payments service.PaymentAPI
	logger   *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(
	store service.SessionStore,
	payments service.PaymentAPI,
	logger *slog.Logger,
) usecase.PaymentUsecase {
	return &paymentService{
		store:    store,
		payments: payments,
		logger:   logger,
	}
}

// CreatePaymentLink requests a hosted checkout URL for a placed order.
func (srv *paymentService) CreatePaymentLink(ctx context.Context, orderID string, amount float64) usecase.PaymentLinkResult {
	token, ok := sessionToken(srv.store)
	if !ok {
		return usecase.PaymentLinkResult{Result: usecase.Fail(usecase.MsgPleaseLogIn)}
	}

	link, err := srv.payments.CreatePaymentLink(ctx, token, orderID, amount)
	if err != nil {
		srv.logger.Warn("Payment link creation failed", "orderID", orderID, "error", err)

		message := domainerrors.MessageOf(err, "Failed to create payment link.")
		srv.store.SetLastError(message)

		return usecase.PaymentLinkResult{Result: usecase.Fail(message)}
	}

	srv.logger.Info("Payment link created", "orderID", orderID)

	return usecase.PaymentLinkResult{
		Result:      usecase.OK("Payment link created."),
		CheckoutURL: link.CheckoutURL,
	}
}
