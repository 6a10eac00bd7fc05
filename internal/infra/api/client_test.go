package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"medimart/internal/domain/entity"
	domainerrors "medimart/internal/domain/errors"
	"medimart/internal/errors"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	httpClient := resty.New().
		SetBaseURL(server.URL).
		SetHeader("Accept", "application/json")

	return NewWithHTTP(httpClient, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func entityProfileUpdate() entity.ProfileUpdate {
	return entity.ProfileUpdate{Name: "Alice", Email: "alice@example.com", Phone: "0123456789"}
}

func TestLogin_Success(t *testing.T) {
	var gotBody string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, epLogin, r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"_id":"u1","username":"alice","role":"USER","profile":{"name":"Alice"}},"token":"t1"}`))
	}))

	result, err := client.Login(context.Background(), "alice", "pw1")

	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"alice","password":"pw1"}`, gotBody)
	assert.Equal(t, "u1", result.User.ID)
	assert.Equal(t, "alice", result.User.Username)
	assert.Equal(t, "user", result.User.Role.String())
	assert.Equal(t, "t1", result.Token)
}

func TestLogin_MissingUserField(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"token":"t1"}`))
	}))

	_, err := client.Login(context.Background(), "alice", "pw1")

	assert.ErrorIs(t, err, domainerrors.ErrMalformedResponse)
}

func TestLogin_MissingTokenField(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"user":{"_id":"u1","username":"alice","role":"user"}}`))
	}))

	_, err := client.Login(context.Background(), "alice", "pw1")

	assert.ErrorIs(t, err, domainerrors.ErrMalformedResponse)
}

func TestLogin_ServerMessageSurfacedVerbatim(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid username or password"}`))
	}))

	_, err := client.Login(context.Background(), "alice", "wrong")

	require.Error(t, err)
	var serverErr *domainerrors.ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.Equal(t, http.StatusUnauthorized, serverErr.StatusCode)
	assert.Equal(t, "Invalid username or password", serverErr.ServerMsg)
}

func TestDecode_NonJSONErrorBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>502 Bad Gateway</html>"))
	}))

	_, err := client.Login(context.Background(), "alice", "pw1")

	assert.ErrorIs(t, err, domainerrors.ErrNonJSONResponse)
}

func TestDecode_TransportFailure(t *testing.T) {
	httpClient := resty.New().SetBaseURL("http://127.0.0.1:1")
	client := NewWithHTTP(httpClient, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := client.Login(context.Background(), "alice", "pw1")

	assert.ErrorIs(t, err, domainerrors.ErrNetworkFailure)
}

func TestUpdateProfile_NonJSONErrorBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>Internal Server Error</html>"))
	}))

	err := client.UpdateProfile(context.Background(), "t1", entityProfileUpdate())

	assert.ErrorIs(t, err, domainerrors.ErrNonJSONResponse)
}

func TestUpdateProfile_SendsBearerTokenAndPatch(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "Bearer t1", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		// Server-managed fields have no counterpart in the update type.
		assert.NotContains(t, string(body), "_id")
		assert.NotContains(t, string(body), "accountId")

		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))

	err := client.UpdateProfile(context.Background(), "t1", entityProfileUpdate())

	assert.NoError(t, err)
}

func TestCancelOrder_ReturnsServerMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/o1/cancel", r.URL.Path)
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))

	message, err := client.CancelOrder(context.Background(), "t1", "o1", "changed my mind")

	require.NoError(t, err)
	assert.Equal(t, "ok", message)
}
