package impl

import (
	"context"
	"testing"

	"medimart/internal/domain/entity"
	domainerrors "medimart/internal/domain/errors"
	"medimart/internal/domain/service"
	"medimart/internal/infra/state"
	"medimart/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	store   service.SessionStore
	orders  *mockOrderAPI
	carts   *mockCartAPI
	service usecase.OrderUsecase
}

func newOrderFixture(signedIn bool) *orderFixture {
	fixture := &orderFixture{
		store:  state.NewStore(),
		orders: &mockOrderAPI{},
		carts:  &mockCartAPI{},
	}
	if signedIn {
		fixture.store.SetCredentials(testUser(), "tok-1")
	}
	fixture.service = NewOrderService(
		fixture.store,
		fixture.orders,
		fixture.carts,
		validator.New(validator.WithRequiredStructEnabled()),
		testLogger(),
	)

	return fixture
}

func checkoutInput() usecase.PlaceOrderInput {
	return usecase.PlaceOrderInput{
		Items:           []entity.OrderItem{{ProductID: "p-1", Quantity: 2, UnitPrice: 9.5}},
		ShippingAddress: "1 Main St, Ward 4, District 1, Springfield",
		RecipientName:   "Alice",
		Phone:           "0123456789",
		PaymentMethod:   "cod",
	}
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	fixture := newOrderFixture(true)
	ctx := context.Background()
	input := checkoutInput()

	fixture.orders.On("PlaceOrder", ctx, "tok-1", mock.AnythingOfType("entity.OrderDraft")).
		Return(&entity.Order{ID: "o-1", Status: entity.OrderPending}, nil)
	fixture.carts.On("FetchCart", ctx, "tok-1").Return([]entity.CartLine{}, nil)

	result := fixture.service.PlaceOrder(ctx, input)

	require.True(t, result.Success)
	assert.Equal(t, "o-1", result.OrderID)
	fixture.carts.AssertCalled(t, "FetchCart", ctx, "tok-1")
}

func TestOrderService_PlaceOrder_RequiresSession(t *testing.T) {
	fixture := newOrderFixture(false)

	result := fixture.service.PlaceOrder(context.Background(), checkoutInput())

	require.False(t, result.Success)
	assert.Equal(t, usecase.MsgPleaseLogIn, result.Message)
	fixture.orders.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_RejectsEmptyItems(t *testing.T) {
	fixture := newOrderFixture(true)
	input := checkoutInput()
	input.Items = nil

	result := fixture.service.PlaceOrder(context.Background(), input)

	require.False(t, result.Success)
	fixture.orders.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_CancelOrder_CanonicalMessage(t *testing.T) {
	fixture := newOrderFixture(true)
	ctx := context.Background()

	fixture.orders.On("CancelOrder", ctx, "tok-1", "o-1", "changed my mind").
		Return("order o-1 transitioned to cancelled state", nil)

	result := fixture.service.CancelOrder(ctx, "o-1", "changed my mind")

	require.True(t, result.Success)
	assert.Equal(t, usecase.MsgOrderCancelled, result.Message)
}

func TestOrderService_CancelOrder_SurfacesServerMessage(t *testing.T) {
	fixture := newOrderFixture(true)
	ctx := context.Background()

	fixture.orders.On("CancelOrder", ctx, "tok-1", "o-1", "").
		Return("", domainerrors.NewServerError(409, "Order is already being processed"))

	result := fixture.service.CancelOrder(ctx, "o-1", "")

	require.False(t, result.Success)
	assert.Equal(t, "Order is already being processed", result.Message)
}

func TestOrderService_FetchMyOrders_AnonymousIsEmpty(t *testing.T) {
	fixture := newOrderFixture(false)

	orders := fixture.service.FetchMyOrders(context.Background())

	assert.Empty(t, orders)
	fixture.orders.AssertNotCalled(t, "FetchMyOrders", mock.Anything, mock.Anything)
}

func TestOrderService_GetOrder_FailureReturnsNil(t *testing.T) {
	fixture := newOrderFixture(true)
	ctx := context.Background()

	fixture.orders.On("GetOrder", ctx, "tok-1", "o-404").
		Return(nil, domainerrors.NewServerError(404, "Order not found"))

	order := fixture.service.GetOrder(ctx, "o-404")

	assert.Nil(t, order)
	assert.Equal(t, "Order not found", fixture.store.Snapshot().LastError)
}
