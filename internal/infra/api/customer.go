package api

import (
	"context"
	"encoding/json"

	"medimart/internal/domain/entity"
	domainerrors "medimart/internal/domain/errors"
)

// FetchProfile retrieves the signed-in customer's account snapshot.
func (c *Client) FetchProfile(ctx context.Context, token string) (*entity.User, error) {
	resp, err := c.request(ctx, token).Get(epProfile)

	// The profile endpoint wraps the account as {"user": ...} or returns it bare.
	var envelope struct {
		User *userDTO `json:"user"`
	}
	if err := c.decode(ctx, resp, err, &envelope); err != nil {
		return nil, err
	}

	if envelope.User != nil {
		return envelope.User.toEntity(), nil
	}

	var bare userDTO
	if jsonErr := json.Unmarshal(resp.Body(), &bare); jsonErr == nil && bare.value() != "" {
		return bare.toEntity(), nil
	}

	return nil, domainerrors.ErrMalformedResponse.WrapMessage("profile response missing user")
}

// UpdateProfile patches the customer-editable profile fields. The update
// type carries no server-managed fields, so none can leak into the request.
func (c *Client) UpdateProfile(ctx context.Context, token string, update entity.ProfileUpdate) error {
	resp, err := c.request(ctx, token).
		SetBody(update).
		Patch(epProfile)

	return c.decode(ctx, resp, err, nil)
}

// ChangePassword submits a password change for the signed-in customer.
func (c *Client) ChangePassword(ctx context.Context, token, currentPassword, newPassword string) error {
	resp, err := c.request(ctx, token).
		SetBody(map[string]string{
			"currentPassword": currentPassword,
			"newPassword":     newPassword,
		}).
		Put(epChangePassword)

	return c.decode(ctx, resp, err, nil)
}

// FetchAddresses retrieves the customer's address book.
func (c *Client) FetchAddresses(ctx context.Context, token string) ([]entity.Address, error) {
	resp, err := c.request(ctx, token).Get(epAddresses)

	if err := c.decode(ctx, resp, err, nil); err != nil {
		return nil, err
	}

	return decodeAddressList(resp.Body()), nil
}

// AddAddress appends an entry to the customer's address book.
func (c *Client) AddAddress(ctx context.Context, token string, address entity.Address) error {
	resp, err := c.request(ctx, token).
		SetBody(addressBody(address)).
		Post(epAddresses)

	return c.decode(ctx, resp, err, nil)
}

// UpdateAddress replaces an address book entry.
func (c *Client) UpdateAddress(ctx context.Context, token, addressID string, address entity.Address) error {
	resp, err := c.request(ctx, token).
		SetBody(addressBody(address)).
		Put(epAddress(addressID))

	return c.decode(ctx, resp, err, nil)
}

// DeleteAddress removes an address book entry.
func (c *Client) DeleteAddress(ctx context.Context, token, addressID string) error {
	resp, err := c.request(ctx, token).Delete(epAddress(addressID))

	return c.decode(ctx, resp, err, nil)
}

func addressBody(address entity.Address) map[string]any {
	return map[string]any{
		"name":        address.Name,
		"phone":       address.Phone,
		"addressType": address.AddressType,
		"isDefault":   address.IsDefault,
		"city":        address.City,
		"district":    address.District,
		"ward":        address.Ward,
		"address":     address.Address,
	}
}
