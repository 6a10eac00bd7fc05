package api

import (
	"context"
	"net/http"
	"testing"

	"medimart/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCart_DropsUnpopulatedProductRefs(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer t1", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"items":[
			{"_id":"l1","quantity":2,"productId":{"_id":"p1","name":"Vitamin C","price":10,"images":["a.jpg"]}},
			{"_id":"l2","quantity":1,"productId":null},
			{"_id":"l3","quantity":1,"productId":"p3"},
			{"_id":"l4","quantity":0,"productId":{"_id":"p4","name":"Sunscreen","price":5}}
		]}`))
	}))

	lines, err := client.FetchCart(context.Background(), "t1")

	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "l1", lines[0].LineID)
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, "Vitamin C", lines[0].Name)
	assert.Equal(t, 10.0, lines[0].Price)
	assert.Equal(t, "a.jpg", lines[0].Image)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestFetchCart_NestedCartEnvelope(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"cart":{"items":[{"_id":"l1","quantity":1,"productId":{"_id":"p1","name":"X","price":"12.5"}}]}}`))
	}))

	lines, err := client.FetchCart(context.Background(), "t1")

	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 12.5, lines[0].Price, "quoted prices decode like numbers")
}

func TestProducts_NestedDataEnvelope(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "serum", r.URL.Query().Get("search"))
		_, _ = w.Write([]byte(`{"data":{"data":{"products":[{"_id":"p1","name":"Serum","price":20}]}}}`))
	}))

	products, err := client.Products(context.Background(), service.ProductQuery{Search: "serum"})

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Serum", products[0].Name)
}

func TestProducts_BareArray(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"p1","name":"Lotion","price":7}]`))
	}))

	products, err := client.Products(context.Background(), service.ProductQuery{})

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID, "plain id is accepted when _id is absent")
}

func TestProducts_ShapeMismatchFailsClosed(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected":true}`))
	}))

	products, err := client.Products(context.Background(), service.ProductQuery{})

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestFetchAddresses_EnvelopeVariants(t *testing.T) {
	bodies := map[string]string{
		"addresses key": `{"addresses":[{"_id":"a1","name":"Home","isDefault":true}]}`,
		"data key":      `{"data":[{"_id":"a1","name":"Home","isDefault":true}]}`,
		"bare array":    `[{"_id":"a1","name":"Home","isDefault":true}]`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			payload := body
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(payload))
			}))

			addresses, err := client.FetchAddresses(context.Background(), "t1")

			require.NoError(t, err)
			require.Len(t, addresses, 1)
			assert.Equal(t, "a1", addresses[0].ID)
			assert.True(t, addresses[0].IsDefault)
		})
	}
}

func TestFetchMyOrders_MapsStatusAndItems(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"orders":[{
			"_id":"o1","status":"processing","totalAmount":"40",
			"items":[{"productId":{"_id":"p1","name":"X"},"quantity":2,"unitPrice":20}],
			"shippingAddress":"1 Main St, W, D, C","recipientName":"Alice","phone":"0123",
			"paymentMethod":"cod","createdAt":"2026-08-30T10:00:00Z"
		}]}`))
	}))

	orders, err := client.FetchMyOrders(context.Background(), "t1")

	require.NoError(t, err)
	require.Len(t, orders, 1)
	order := orders[0]
	assert.Equal(t, "o1", order.ID)
	assert.False(t, order.Status.CanCancel())
	assert.Equal(t, 40.0, order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "p1", order.Items[0].ProductID)
	assert.Equal(t, 20.0, order.Items[0].UnitPrice)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestToggleFavorite_StateVariants(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/favorites/toggle/p1", r.URL.Path)
		_, _ = w.Write([]byte(`{"isFavorite":true,"message":"added"}`))
	}))

	favorited, err := client.ToggleFavorite(context.Background(), "t1", "p1")

	require.NoError(t, err)
	assert.True(t, favorited)
}
