package impl

import (
	"context"
	"testing"

	"medimart/internal/domain/entity"
	"medimart/internal/infra/state"
	"medimart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFavoriteService_Toggle_ReportsResultingState(t *testing.T) {
	store := state.NewStore()
	store.SetCredentials(testUser(), "tok-1")
	favorites := &mockFavoriteAPI{}
	svc := NewFavoriteService(store, favorites, testLogger())
	ctx := context.Background()

	favorites.On("ToggleFavorite", ctx, "tok-1", "p-1").Return(true, nil).Once()
	favorites.On("ToggleFavorite", ctx, "tok-1", "p-1").Return(false, nil).Once()

	added := svc.ToggleFavorite(ctx, "p-1")
	removed := svc.ToggleFavorite(ctx, "p-1")

	require.True(t, added.Success)
	assert.Equal(t, "Added to favorites", added.Message)
	require.True(t, removed.Success)
	assert.Equal(t, "Removed from favorites", removed.Message)
}

func TestFavoriteService_Toggle_RequiresSession(t *testing.T) {
	store := state.NewStore()
	favorites := &mockFavoriteAPI{}
	svc := NewFavoriteService(store, favorites, testLogger())

	result := svc.ToggleFavorite(context.Background(), "p-1")

	require.False(t, result.Success)
	assert.Equal(t, usecase.MsgPleaseLogIn, result.Message)
	favorites.AssertNotCalled(t, "ToggleFavorite", mock.Anything, mock.Anything, mock.Anything)
}

func TestFavoriteService_Fetch_AnonymousIsEmpty(t *testing.T) {
	store := state.NewStore()
	favorites := &mockFavoriteAPI{}
	svc := NewFavoriteService(store, favorites, testLogger())

	products := svc.FetchFavorites(context.Background())

	assert.Empty(t, products)
	favorites.AssertNotCalled(t, "FetchFavorites", mock.Anything, mock.Anything)
}

func TestFavoriteService_Fetch_ReturnsProducts(t *testing.T) {
	store := state.NewStore()
	store.SetCredentials(testUser(), "tok-1")
	favorites := &mockFavoriteAPI{}
	svc := NewFavoriteService(store, favorites, testLogger())
	ctx := context.Background()

	wishlist := []entity.Product{{ID: "p-1", Name: "Lip Balm", Price: 4.5}}
	favorites.On("FetchFavorites", ctx, "tok-1").Return(wishlist, nil)

	products := svc.FetchFavorites(ctx)

	assert.Equal(t, wishlist, products)
}
