package service

import (
	"context"

	"medimart/internal/domain/entity"
)

// The interfaces below are the contract with the remote storefront API,
// grouped by endpoint family. The gateway implementation normalizes every
// response: decoded entities on success, a ServerError carrying the
// server's own message on a JSON error body, and typed gateway errors for
// non-JSON or malformed bodies. Use cases never see a raw HTTP response.

// LoginResult is the decoded payload of a successful login.
type LoginResult struct {
	User  *entity.User
	Token string
}

// RegisterPayload carries the fields of a registration form.
type RegisterPayload struct {
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required,min=8"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone,omitempty"`
	Gender      string `json:"gender,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
}

// ProductQuery narrows a catalog listing.
type ProductQuery struct {
	Search   string
	Category string
	Page     int
	Limit    int
}

// AuthAPI covers the auth endpoint family.
type AuthAPI interface {
	// Login exchanges credentials for a user snapshot and token.
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	// LoginWithGoogle exchanges a Google ID token for a session.
	LoginWithGoogle(ctx context.Context, idToken string) (*LoginResult, error)

	// Register creates an account. It does not sign the customer in;
	// the returned message instructs them to verify their email.
	Register(ctx context.Context, payload RegisterPayload) (string, error)

	// VerifyEmail confirms an email verification token.
	VerifyEmail(ctx context.Context, token string) (string, error)
}

// CustomerAPI covers the customer profile endpoint family.
type CustomerAPI interface {
	FetchProfile(ctx context.Context, token string) (*entity.User, error)
	UpdateProfile(ctx context.Context, token string, update entity.ProfileUpdate) error
	ChangePassword(ctx context.Context, token, currentPassword, newPassword string) error

	FetchAddresses(ctx context.Context, token string) ([]entity.Address, error)
	AddAddress(ctx context.Context, token string, address entity.Address) error
	UpdateAddress(ctx context.Context, token, addressID string, address entity.Address) error
	DeleteAddress(ctx context.Context, token, addressID string) error
}

// CartAPI covers the cart endpoint family.
type CartAPI interface {
	FetchCart(ctx context.Context, token string) ([]entity.CartLine, error)
	AddCartItem(ctx context.Context, token, productID string, quantity int) error
	UpdateCartItem(ctx context.Context, token, lineID string, quantity int) error
	RemoveCartItem(ctx context.Context, token, lineID string) error
	ClearCart(ctx context.Context, token string) error
}

// OrderAPI covers the order endpoint family.
type OrderAPI interface {
	FetchMyOrders(ctx context.Context, token string) ([]entity.Order, error)
	GetOrder(ctx context.Context, token, orderID string) (*entity.Order, error)
	PlaceOrder(ctx context.Context, token string, draft entity.OrderDraft) (*entity.Order, error)
	CancelOrder(ctx context.Context, token, orderID, reason string) (string, error)
}

// CatalogAPI covers the product and review endpoint families.
type CatalogAPI interface {
	Products(ctx context.Context, query ProductQuery) ([]entity.Product, error)
	Product(ctx context.Context, productID string) (*entity.Product, error)

	CreateReview(ctx context.Context, token string, draft entity.ReviewDraft) error
	UpdateReview(ctx context.Context, token string, draft entity.ReviewDraft) error
	DeleteReview(ctx context.Context, token, productID, reviewID string) error
}

// FavoriteAPI covers the favorites endpoint family.
type FavoriteAPI interface {
	FetchFavorites(ctx context.Context, token string) ([]entity.Product, error)
	ToggleFavorite(ctx context.Context, token, productID string) (favorited bool, err error)
	AddFavorite(ctx context.Context, token, productID string) error
	RemoveFavorite(ctx context.Context, token, productID string) error
}

// PaymentAPI covers the payment endpoint family.
type PaymentAPI interface {
	CreatePaymentLink(ctx context.Context, token, orderID string, amount float64) (*entity.PaymentLink, error)
}

// VisionAPI covers the AI image search endpoint.
type VisionAPI interface {
	// SearchByImage uploads an image and returns visually similar products.
	SearchByImage(ctx context.Context, filename string, image []byte) ([]entity.Product, error)
}
