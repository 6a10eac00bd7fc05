// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"medimart/internal/domain/entity"
	domainerrors "medimart/internal/domain/errors"
	"medimart/internal/domain/repository"
	"medimart/internal/domain/service"
	"medimart/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	store     service.SessionStore
	creds     repository.CredentialRepository
	auth      service.AuthAPI
	customers service.CustomerAPI
	carts     service.CartAPI
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	store service.SessionStore,
	creds repository.CredentialRepository,
	auth service.AuthAPI,
	customers service.CustomerAPI,
	carts service.CartAPI,
	validate *validator.Validate,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		store:     store,
		creds:     creds,
		auth:      auth,
		customers: customers,
		carts:     carts,
		validate:  validate,
		logger:    logger,
	}
}

// Restore adopts the persisted user/token pair into the store. The pair is
// all-or-nothing: a missing or unreadable record on either side leaves the
// session anonymous, without surfacing an error at startup.
func (srv *sessionService) Restore(ctx context.Context) entity.Session {
	srv.store.SetLoading(true)
	srv.restore(ctx)
	srv.store.SetLoading(false)

	return srv.store.Snapshot()
}

func (srv *sessionService) restore(ctx context.Context) {
	token, err := srv.creds.GetToken(ctx)
	if err != nil || token == "" {
		if err != nil && !errors.Is(err, repository.ErrRecordNotFound) {
			srv.logger.Warn("Could not read persisted token", "error", err)
		}

		return
	}

	user, err := srv.creds.GetUser(ctx)
	if err != nil || user == nil {
		if err != nil && !errors.Is(err, repository.ErrRecordNotFound) {
			srv.logger.Warn("Could not read persisted user", "error", err)
		}

		return
	}

	srv.store.SetCredentials(user, token)
	srv.refreshCart(ctx, token)

	srv.logger.Info("Session restored", "userID", user.ID, "role", user.Role)
}

// Login signs the customer in with a username and password.
func (srv *sessionService) Login(ctx context.Context, username, password string) usecase.Result {
	return srv.signIn(ctx, func() (*service.LoginResult, error) {
		return srv.auth.Login(ctx, username, password)
	})
}

// LoginWithGoogle signs the customer in with a Google ID token.
func (srv *sessionService) LoginWithGoogle(ctx context.Context, idToken string) usecase.Result {
	return srv.signIn(ctx, func() (*service.LoginResult, error) {
		return srv.auth.LoginWithGoogle(ctx, idToken)
	})
}

// signIn runs the shared sign-in sequence: exchange credentials, adopt the
// pair into the store, persist both records, then mirror the cart. A failed
// exchange leaves the previous session exactly as it was.
func (srv *sessionService) signIn(ctx context.Context, exchange func() (*service.LoginResult, error)) usecase.Result {
	srv.store.SetLoading(true)
	defer srv.store.SetLoading(false)

	result, err := exchange()
	if err != nil {
		srv.logger.Warn("Login failed", "error", err)

		return srv.fail(err, "Login failed. Please try again.")
	}

	// The gateway guarantees a complete pair; a partial one here is a bug
	// on the other side and must not be adopted halfway.
	if result.User == nil || result.Token == "" {
		srv.logger.Warn("Login response missing credentials")

		return srv.fail(domainerrors.ErrMalformedResponse, "Login failed. Please try again.")
	}

	srv.store.SetCredentials(result.User, result.Token)
	srv.store.SetLastError("")

	if err := srv.creds.SaveUser(ctx, result.User); err != nil {
		srv.logger.Warn("Could not persist user snapshot", "error", err)
	}

	if err := srv.creds.SaveToken(ctx, result.Token); err != nil {
		srv.logger.Warn("Could not persist auth token", "error", err)
	}

	srv.refreshCart(ctx, result.Token)

	srv.logger.Info("Login succeeded", "userID", result.User.ID, "role", result.User.Role)

	return usecase.OK("Login successful")
}

// Register creates an account. Registration does not sign the customer in;
// the account stays pending until the email is verified.
func (srv *sessionService) Register(ctx context.Context, input usecase.RegisterInput) usecase.Result {
	srv.store.SetLoading(true)
	defer srv.store.SetLoading(false)

	payload := service.RegisterPayload{
		Username:    input.Username,
		Password:    input.Password,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Gender:      input.Gender,
		DateOfBirth: input.DateOfBirth,
	}

	if err := srv.validate.Struct(payload); err != nil {
		srv.logger.Debug("Registration input rejected", "error", err)

		return usecase.Fail(domainerrors.ErrValidationFailed.Message())
	}

	message, err := srv.auth.Register(ctx, payload)
	if err != nil {
		srv.logger.Warn("Registration failed", "error", err)

		return srv.fail(err, "Registration failed. Please try again.")
	}

	if message == "" {
		message = usecase.MsgRegistered
	}

	return usecase.OK(message)
}

// VerifyEmail confirms an email verification token.
func (srv *sessionService) VerifyEmail(ctx context.Context, token string) usecase.Result {
	message, err := srv.auth.VerifyEmail(ctx, token)
	if err != nil {
		srv.logger.Warn("Email verification failed", "error", err)

		return srv.fail(err, "Email verification failed.")
	}

	if message == "" {
		message = "Email verified successfully."
	}

	return usecase.OK(message)
}

// Logout clears the persisted records and resets the session. The local
// reset happens even when storage cannot be cleared.
func (srv *sessionService) Logout(ctx context.Context) usecase.Result {
	if err := srv.creds.ClearAll(ctx); err != nil {
		srv.logger.Warn("Could not clear persisted credentials", "error", err)
	}

	srv.store.Clear()

	srv.logger.Info("Logged out")

	return usecase.OK("Logged out successfully.")
}

// FetchProfile refetches the account snapshot and mirrors it into the store.
func (srv *sessionService) FetchProfile(ctx context.Context) *entity.User {
	token, ok := sessionToken(srv.store)
	if !ok {
		return nil
	}

	user, err := srv.customers.FetchProfile(ctx, token)
	if err != nil {
		srv.logger.Warn("Profile fetch failed", "error", err)
		srv.store.SetLastError(domainerrors.MessageOf(err, "Failed to load profile."))

		return nil
	}

	srv.store.SetUser(user)

	if err := srv.creds.SaveUser(ctx, user); err != nil {
		srv.logger.Warn("Could not persist user snapshot", "error", err)
	}

	return user
}

// UpdateProfile patches the customer-editable profile fields, then refetches
// the profile so the store reflects what the server actually kept.
func (srv *sessionService) UpdateProfile(ctx context.Context, update entity.ProfileUpdate) usecase.Result {
	token, ok := sessionToken(srv.store)
	if !ok {
		return usecase.Fail(usecase.MsgPleaseLogIn)
	}

	if err := srv.customers.UpdateProfile(ctx, token, update); err != nil {
		srv.logger.Warn("Profile update failed", "error", err)

		if errors.Is(err, domainerrors.ErrNonJSONResponse) {
			srv.store.SetLastError(usecase.MsgProfileNonJSON)

			return usecase.Fail(usecase.MsgProfileNonJSON)
		}

		return srv.fail(err, "Failed to update profile.")
	}

	srv.FetchProfile(ctx)

	return usecase.OK("Profile updated successfully.")
}

// ChangePassword submits a password change. The server invalidates the
// current token on success, so a forced logout follows; a failed storage
// clear does not keep the dead session alive.
func (srv *sessionService) ChangePassword(ctx context.Context, currentPassword, newPassword string) usecase.Result {
	token, ok := sessionToken(srv.store)
	if !ok {
		return usecase.Fail(usecase.MsgPleaseLogIn)
	}

	if err := srv.customers.ChangePassword(ctx, token, currentPassword, newPassword); err != nil {
		srv.logger.Warn("Password change failed", "error", err)

		return srv.fail(err, "Failed to change password.")
	}

	if err := srv.creds.ClearAll(ctx); err != nil {
		srv.logger.Warn("Could not clear persisted credentials", "error", err)
	}

	srv.store.Clear()

	return usecase.OK(usecase.MsgPasswordChanged)
}

// refreshCart mirrors the server cart into the store, best-effort.
func (srv *sessionService) refreshCart(ctx context.Context, token string) {
	lines, err := srv.carts.FetchCart(ctx, token)
	if err != nil {
		srv.logger.Warn("Cart fetch failed", "error", err)

		return
	}

	srv.store.SetCart(lines)
}

// fail records the failure on the store and converts it into a Result.
func (srv *sessionService) fail(err error, fallback string) usecase.Result {
	message := domainerrors.MessageOf(err, fallback)
	srv.store.SetLastError(message)

	return usecase.Fail(message)
}
