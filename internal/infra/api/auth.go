package api

import (
	"context"
	"log/slog"

	domainerrors "medimart/internal/domain/errors"
	"medimart/internal/domain/service"
)

// Login exchanges credentials for a user snapshot and token.
func (c *Client) Login(ctx context.Context, username, password string) (*service.LoginResult, error) {
	c.log(ctx).Debug("Logging in", slog.String("username", username))

	resp, err := c.request(ctx, "").
		SetBody(map[string]string{"username": username, "password": password}).
		Post(epLogin)

	var envelope loginEnvelope
	if err := c.decode(ctx, resp, err, &envelope); err != nil {
		return nil, err
	}

	// A 2xx body without a user or token is a malformed success, not a
	// login. Credentials are only ever adopted as a complete pair.
	if envelope.User == nil || envelope.Token == "" {
		return nil, domainerrors.ErrMalformedResponse.WrapMessage("login response missing user or token")
	}

	return &service.LoginResult{
		User:  envelope.User.toEntity(),
		Token: envelope.Token,
	}, nil
}

// LoginWithGoogle exchanges a Google ID token for a session.
func (c *Client) LoginWithGoogle(ctx context.Context, idToken string) (*service.LoginResult, error) {
	c.log(ctx).Debug("Logging in with Google")

	resp, err := c.request(ctx, "").
		SetBody(map[string]string{"idToken": idToken}).
		Post(epGoogleLogin)

	var envelope loginEnvelope
	if err := c.decode(ctx, resp, err, &envelope); err != nil {
		return nil, err
	}

	if envelope.User == nil || envelope.Token == "" {
		return nil, domainerrors.ErrMalformedResponse.WrapMessage("google login response missing user or token")
	}

	return &service.LoginResult{
		User:  envelope.User.toEntity(),
		Token: envelope.Token,
	}, nil
}

// Register creates an account and returns the server's message.
func (c *Client) Register(ctx context.Context, payload service.RegisterPayload) (string, error) {
	c.log(ctx).Debug("Registering account", slog.String("username", payload.Username))

	resp, err := c.request(ctx, "").
		SetBody(payload).
		Post(epRegister)

	var envelope messageEnvelope
	if err := c.decode(ctx, resp, err, &envelope); err != nil {
		return "", err
	}

	return envelope.Message, nil
}

// VerifyEmail confirms an email verification token.
func (c *Client) VerifyEmail(ctx context.Context, token string) (string, error) {
	resp, err := c.request(ctx, "").
		SetQueryParam("token", token).
		Get(epVerifyEmail)

	var envelope messageEnvelope
	if err := c.decode(ctx, resp, err, &envelope); err != nil {
		return "", err
	}

	return envelope.Message, nil
}
