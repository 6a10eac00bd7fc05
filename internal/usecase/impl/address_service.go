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

// addressService implements the AddressUsecase interface.
type addressService struct {
	store     service.SessionStore
	customers service.CustomerAPI
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(
	store service.SessionStore,
	customers service.CustomerAPI,
	validate *validator.Validate,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		store:     store,
		customers: customers,
		validate:  validate,
		logger:    logger,
	}
}

// FetchAddresses retrieves the address book and mirrors it into the store.
func (srv *addressService) FetchAddresses(ctx context.Context) []entity.Address {
	token, ok := sessionToken(srv.store)
	if !ok {
		return []entity.Address{}
	}

	addresses, err := srv.customers.FetchAddresses(ctx, token)
	if err != nil {
		srv.logger.Warn("Address fetch failed", "error", err)
		srv.store.SetLastError(domainerrors.MessageOf(err, "Failed to load addresses."))

		return []entity.Address{}
	}

	srv.store.SetAddresses(addresses)

	return addresses
}

// AddAddress appends an entry to the address book.
func (srv *addressService) AddAddress(ctx context.Context, input usecase.AddressInput) usecase.Result {
	token, ok := sessionToken(srv.store)
	if !ok {
		return usecase.Fail(usecase.MsgPleaseLogIn)
	}

	if err := srv.validate.Struct(input); err != nil {
		srv.logger.Debug("Address input rejected", "error", err)

		return usecase.Fail(domainerrors.ErrValidationFailed.Message())
	}

	if err := srv.customers.AddAddress(ctx, token, toAddress("", input)); err != nil {
		srv.logger.Warn("Address add failed", "error", err)

		return srv.fail(err, "Failed to add address.")
	}

	return usecase.OK("Address added successfully.")
}

// UpdateAddress replaces an entry.
func (srv *addressService) UpdateAddress(ctx context.Context, addressID string, input usecase.AddressInput) usecase.Result {
	token, ok := sessionToken(srv.store)
	if !ok {
		return usecase.Fail(usecase.MsgPleaseLogIn)
	}

	if err := srv.validate.Struct(input); err != nil {
		srv.logger.Debug("Address input rejected", "error", err)

		return usecase.Fail(domainerrors.ErrValidationFailed.Message())
	}

	if err := srv.customers.UpdateAddress(ctx, token, addressID, toAddress(addressID, input)); err != nil {
		srv.logger.Warn("Address update failed", "addressID", addressID, "error", err)

		return srv.fail(err, "Failed to update address.")
	}

	return usecase.OK("Address updated successfully.")
}

// DeleteAddress removes an entry.
func (srv *addressService) DeleteAddress(ctx context.Context, addressID string) usecase.Result {
	token, ok := sessionToken(srv.store)
	if !ok {
		return usecase.Fail(usecase.MsgPleaseLogIn)
	}

	if err := srv.customers.DeleteAddress(ctx, token, addressID); err != nil {
		srv.logger.Warn("Address delete failed", "addressID", addressID, "error", err)

		return srv.fail(err, "Failed to delete address.")
	}

	return usecase.OK("Address deleted successfully.")
}

func toAddress(addressID string, input usecase.AddressInput) entity.Address {
	return entity.Address{
		ID:          addressID,
		Name:        input.Name,
		Phone:       input.Phone,
		AddressType: input.AddressType,
		IsDefault:   input.IsDefault,
		City:        input.City,
		District:    input.District,
		Ward:        input.Ward,
		Address:     input.Address,
	}
}

func (srv *addressService) fail(err error, fallback string) usecase.Result {
	message := domainerrors.MessageOf(err, fallback)
	srv.store.SetLastError(message)

	return usecase.Fail(message)
}
