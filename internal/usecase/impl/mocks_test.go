package impl

import (
	"context"

	"medimart/internal/domain/entity"
	"medimart/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// Hand-rolled testify mocks for the gateway and repository contracts.

type mockCredentialRepository struct {
	mock.Mock
}

func (m *mockCredentialRepository) GetUser(ctx context.Context) (*entity.User, error) {
	args := m.Called(ctx)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCredentialRepository) SaveUser(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockCredentialRepository) GetToken(ctx context.Context) (string, error) {
	args := m.Called(ctx)

	return args.String(0), args.Error(1)
}

func (m *mockCredentialRepository) SaveToken(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockCredentialRepository) ClearAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockAuthAPI struct {
	mock.Mock
}

func (m *mockAuthAPI) Login(ctx context.Context, username, password string) (*service.LoginResult, error) {
	args := m.Called(ctx, username, password)
	if result, ok := args.Get(0).(*service.LoginResult); ok {
		return result, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAuthAPI) LoginWithGoogle(ctx context.Context, idToken string) (*service.LoginResult, error) {
	args := m.Called(ctx, idToken)
	if result, ok := args.Get(0).(*service.LoginResult); ok {
		return result, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAuthAPI) Register(ctx context.Context, payload service.RegisterPayload) (string, error) {
	args := m.Called(ctx, payload)

	return args.String(0), args.Error(1)
}

func (m *mockAuthAPI) VerifyEmail(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)

	return args.String(0), args.Error(1)
}

type mockCustomerAPI struct {
	mock.Mock
}

func (m *mockCustomerAPI) FetchProfile(ctx context.Context, token string) (*entity.User, error) {
	args := m.Called(ctx, token)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCustomerAPI) UpdateProfile(ctx context.Context, token string, update entity.ProfileUpdate) error {
	return m.Called(ctx, token, update).Error(0)
}

func (m *mockCustomerAPI) ChangePassword(ctx context.Context, token, currentPassword, newPassword string) error {
	return m.Called(ctx, token, currentPassword, newPassword).Error(0)
}

func (m *mockCustomerAPI) FetchAddresses(ctx context.Context, token string) ([]entity.Address, error) {
	args := m.Called(ctx, token)
	if addresses, ok := args.Get(0).([]entity.Address); ok {
		return addresses, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCustomerAPI) AddAddress(ctx context.Context, token string, address entity.Address) error {
	return m.Called(ctx, token, address).Error(0)
}

func (m *mockCustomerAPI) UpdateAddress(ctx context.Context, token, addressID string, address entity.Address) error {
	return m.Called(ctx, token, addressID, address).Error(0)
}

func (m *mockCustomerAPI) DeleteAddress(ctx context.Context, token, addressID string) error {
	return m.Called(ctx, token, addressID).Error(0)
}

type mockCartAPI struct {
	mock.Mock
}

func (m *mockCartAPI) FetchCart(ctx context.Context, token string) ([]entity.CartLine, error) {
	args := m.Called(ctx, token)
	if lines, ok := args.Get(0).([]entity.CartLine); ok {
		return lines, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCartAPI) AddCartItem(ctx context.Context, token, productID string, quantity int) error {
	return m.Called(ctx, token, productID, quantity).Error(0)
}

func (m *mockCartAPI) UpdateCartItem(ctx context.Context, token, lineID string, quantity int) error {
	return m.Called(ctx, token, lineID, quantity).Error(0)
}

func (m *mockCartAPI) RemoveCartItem(ctx context.Context, token, lineID string) error {
	return m.Called(ctx, token, lineID).Error(0)
}

func (m *mockCartAPI) ClearCart(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type mockOrderAPI struct {
	mock.Mock
}

func (m *mockOrderAPI) FetchMyOrders(ctx context.Context, token string) ([]entity.Order, error) {
	args := m.Called(ctx, token)
	if orders, ok := args.Get(0).([]entity.Order); ok {
		return orders, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderAPI) GetOrder(ctx context.Context, token, orderID string) (*entity.Order, error) {
	args := m.Called(ctx, token, orderID)
	if order, ok := args.Get(0).(*entity.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderAPI) PlaceOrder(ctx context.Context, token string, draft entity.OrderDraft) (*entity.Order, error) {
	args := m.Called(ctx, token, draft)
	if order, ok := args.Get(0).(*entity.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderAPI) CancelOrder(ctx context.Context, token, orderID, reason string) (string, error) {
	args := m.Called(ctx, token, orderID, reason)

	return args.String(0), args.Error(1)
}

type mockCatalogAPI struct {
	mock.Mock
}

func (m *mockCatalogAPI) Products(ctx context.Context, query service.ProductQuery) ([]entity.Product, error) {
	args := m.Called(ctx, query)
	if products, ok := args.Get(0).([]entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCatalogAPI) Product(ctx context.Context, productID string) (*entity.Product, error) {
	args := m.Called(ctx, productID)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCatalogAPI) CreateReview(ctx context.Context, token string, draft entity.ReviewDraft) error {
	return m.Called(ctx, token, draft).Error(0)
}

func (m *mockCatalogAPI) UpdateReview(ctx context.Context, token string, draft entity.ReviewDraft) error {
	return m.Called(ctx, token, draft).Error(0)
}

func (m *mockCatalogAPI) DeleteReview(ctx context.Context, token, productID, reviewID string) error {
	return m.Called(ctx, token, productID, reviewID).Error(0)
}

type mockFavoriteAPI struct {
	mock.Mock
}

func (m *mockFavoriteAPI) FetchFavorites(ctx context.Context, token string) ([]entity.Product, error) {
	args := m.Called(ctx, token)
	if products, ok := args.Get(0).([]entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockFavoriteAPI) ToggleFavorite(ctx context.Context, token, productID string) (bool, error) {
	args := m.Called(ctx, token, productID)

	return args.Bool(0), args.Error(1)
}

func (m *mockFavoriteAPI) AddFavorite(ctx context.Context, token, productID string) error {
	return m.Called(ctx, token, productID).Error(0)
}

func (m *mockFavoriteAPI) RemoveFavorite(ctx context.Context, token, productID string) error {
	return m.Called(ctx, token, productID).Error(0)
}

type mockPaymentAPI struct {
	mock.Mock
}

func (m *mockPaymentAPI) CreatePaymentLink(ctx context.Context, token, orderID string, amount float64) (*entity.PaymentLink, error) {
	args := m.Called(ctx, token, orderID, amount)
	if link, ok := args.Get(0).(*entity.PaymentLink); ok {
		return link, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockVisionAPI struct {
	mock.Mock
}

func (m *mockVisionAPI) SearchByImage(ctx context.Context, filename string, image []byte) ([]entity.Product, error) {
	args := m.Called(ctx, filename, image)
	if products, ok := args.Get(0).([]entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}
