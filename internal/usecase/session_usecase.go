package usecase

import (
	"context"

	"medimart/internal/domain/entity"
)

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username    string `validate:"required"`
	Password    string `validate:"required,min=8"`
	Name        string `validate:"required"`
	Email       string `validate:"required,email"`
	Phone       string
	Gender      string
	DateOfBirth string
}

// SessionUsecase owns the session lifecycle: restoring it at startup,
// signing in and out, and maintaining the profile of the signed-in account.
type SessionUsecase interface {
	// Restore performs the single best-effort startup pass: adopt the
	// persisted user/token pair when both records are present, otherwise
	// stay anonymous. Storage failures degrade silently to anonymous.
	Restore(ctx context.Context) entity.Session

	// Login signs the customer in and adopts user, token and cart into the
	// shared store. A failure leaves the previous session untouched.
	Login(ctx context.Context, username, password string) Result

	// LoginWithGoogle signs in with a Google ID token.
	LoginWithGoogle(ctx context.Context, idToken string) Result

	// Register creates an account without signing it in.
	Register(ctx context.Context, input RegisterInput) Result

	// VerifyEmail confirms an email verification token.
	VerifyEmail(ctx context.Context, token string) Result

	// Logout clears the persisted records and resets the session. It always
	// succeeds locally, network reachability notwithstanding.
	Logout(ctx context.Context) Result

	// FetchProfile refetches the account snapshot. Returns nil when
	// anonymous or on any failure.
	FetchProfile(ctx context.Context) *entity.User

	// UpdateProfile patches the customer-editable profile fields.
	UpdateProfile(ctx context.Context, update entity.ProfileUpdate) Result

	// ChangePassword submits a password change. Success invalidates the
	// current session: the server does not return a refreshed token on
	// this path, so a forced logout follows.
	ChangePassword(ctx context.Context, currentPassword, newPassword string) Result
}
