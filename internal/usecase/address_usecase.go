package usecase

import (
	"context"

	"medimart/internal/domain/entity"
)

// AddressInput defines the customer-editable fields of an address book entry.
type AddressInput struct {
	Name        string `validate:"required"`
	Phone       string `validate:"required"`
	AddressType string
	IsDefault   bool
	City        string `validate:"required"`
	District    string
	Ward        string
	Address     string `validate:"required"`
}

// AddressUsecase maintains the customer's address book. Mutating calls do
// not refresh the list; the caller refetches when it wants the new state.
type AddressUsecase interface {
	// FetchAddresses retrieves the address book and mirrors it into the
	// shared store. Returns an empty slice when anonymous or on failure.
	// Which entry carries the default flag is taken from the server as-is.
	FetchAddresses(ctx context.Context) []entity.Address

	// AddAddress appends an entry.
	AddAddress(ctx context.Context, input AddressInput) Result

	// UpdateAddress replaces an entry.
	UpdateAddress(ctx context.Context, addressID string, input AddressInput) Result

	// DeleteAddress removes an entry.
	DeleteAddress(ctx context.Context, addressID string) Result
}
