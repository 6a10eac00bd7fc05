package impl

import (
	"bytes"
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

type catalogFixture struct {
	store   service.SessionStore
	catalog *mockCatalogAPI
	vision  *mockVisionAPI
	service usecase.CatalogUsecase
}

func newCatalogFixture(signedIn bool) *catalogFixture {
	fixture := &catalogFixture{
		store:   state.NewStore(),
		catalog: &mockCatalogAPI{},
		vision:  &mockVisionAPI{},
	}
	if signedIn {
		fixture.store.SetCredentials(testUser(), "tok-1")
	}
	fixture.service = NewCatalogService(
		fixture.store,
		fixture.catalog,
		fixture.vision,
		validator.New(validator.WithRequiredStructEnabled()),
		testLogger(),
	)

	return fixture
}

func TestCatalogService_Products_AnonymousBrowsing(t *testing.T) {
	fixture := newCatalogFixture(false)
	ctx := context.Background()
	query := service.ProductQuery{Search: "vitamin"}

	listing := []entity.Product{{ID: "p-1", Name: "Vitamin C", Price: 9.5}}
	fixture.catalog.On("Products", ctx, query).Return(listing, nil)

	products := fixture.service.Products(ctx, query)

	assert.Equal(t, listing, products)
}

func TestCatalogService_Products_FailureIsEmpty(t *testing.T) {
	fixture := newCatalogFixture(false)
	ctx := context.Background()

	fixture.catalog.On("Products", ctx, mock.Anything).
		Return(nil, domainerrors.ErrNetworkFailure.WrapMessage("dial tcp: timeout"))

	products := fixture.service.Products(ctx, service.ProductQuery{})

	assert.Empty(t, products)
	assert.NotEmpty(t, fixture.store.Snapshot().LastError)
}

func TestCatalogService_SubmitReview_CreateVersusUpdate(t *testing.T) {
	fixture := newCatalogFixture(true)
	ctx := context.Background()

	fixture.catalog.On("CreateReview", ctx, "tok-1", mock.AnythingOfType("entity.ReviewDraft")).Return(nil)
	fixture.catalog.On("UpdateReview", ctx, "tok-1", mock.AnythingOfType("entity.ReviewDraft")).Return(nil)

	created := fixture.service.SubmitReview(ctx, "p-1", entity.ReviewDraft{Rating: 5, Comment: "great"})
	updated := fixture.service.SubmitReview(ctx, "p-1", entity.ReviewDraft{ReviewID: "r-1", Rating: 4})

	require.True(t, created.Success)
	require.True(t, updated.Success)
	fixture.catalog.AssertNumberOfCalls(t, "CreateReview", 1)
	fixture.catalog.AssertNumberOfCalls(t, "UpdateReview", 1)
}

func TestCatalogService_SubmitReview_RequiresSession(t *testing.T) {
	fixture := newCatalogFixture(false)

	result := fixture.service.SubmitReview(context.Background(), "p-1", entity.ReviewDraft{Rating: 5})

	require.False(t, result.Success)
	assert.Equal(t, usecase.MsgPleaseLogIn, result.Message)
	fixture.catalog.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogService_SubmitReview_RejectsInvalidRating(t *testing.T) {
	fixture := newCatalogFixture(true)

	result := fixture.service.SubmitReview(context.Background(), "p-1", entity.ReviewDraft{Rating: 9})

	require.False(t, result.Success)
	fixture.catalog.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogService_SearchByImage_ReturnsMatches(t *testing.T) {
	fixture := newCatalogFixture(false)
	ctx := context.Background()
	image := []byte{0xFF, 0xD8, 0xFF}

	matches := []entity.Product{{ID: "p-9", Name: "Face Cream"}}
	fixture.vision.On("SearchByImage", ctx, "photo.jpg", image).Return(matches, nil)

	products := fixture.service.SearchByImage(ctx, "photo.jpg", bytes.NewReader(image))

	assert.Equal(t, matches, products)
}
