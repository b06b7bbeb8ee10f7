package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/domain"
)

type cartBody struct {
	Items       []domain.CartItem `json:"items"`
	ItemCount   int               `json:"item_count"`
	TotalAmount int64             `json:"total_amount"`
}

func decodeCart(t *testing.T, env envelope) cartBody {
	t.Helper()
	var body cartBody
	require.NoError(t, json.Unmarshal(env.Data, &body))
	return body
}

func TestCartAPI_EmptyCart(t *testing.T) {
	router := setupRouter(t)
	token := login(t, router, "shopper@example.com")

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeCart(t, env)
	assert.Empty(t, body.Items)
	assert.Zero(t, body.ItemCount)
	assert.Zero(t, body.TotalAmount)
}

func TestCartAPI_AddUpdateRemove(t *testing.T) {
	router := setupRouter(t)
	token := login(t, router, "shopper@example.com")

	// Add twice: quantities merge, no duplicate line.
	for range 2 {
		rec, env := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", token,
			map[string]string{"product_id": "prod-001"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		_ = env
	}

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeCart(t, env)
	require.Len(t, body.Items, 1)
	assert.Equal(t, 2, body.Items[0].Quantity)
	assert.Equal(t, 2, body.ItemCount)
	assert.Equal(t, int64(2*4990), body.TotalAmount)

	// Set an explicit quantity.
	rec, env = doJSON(t, router, http.MethodPut, "/api/v1/cart/items/prod-001", token,
		map[string]int{"quantity": 5})
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeCart(t, env)
	assert.Equal(t, 5, body.ItemCount)

	// Quantity zero removes the line.
	rec, env = doJSON(t, router, http.MethodPut, "/api/v1/cart/items/prod-001", token,
		map[string]int{"quantity": 0})
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeCart(t, env)
	assert.Empty(t, body.Items)
}

func TestCartAPI_AddUnknownProduct(t *testing.T) {
	router := setupRouter(t)
	token := login(t, router, "shopper@example.com")

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", token,
		map[string]string{"product_id": "prod-999"})

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestCartAPI_RemoveAbsentItemSucceeds(t *testing.T) {
	router := setupRouter(t)
	token := login(t, router, "shopper@example.com")

	rec, env := doJSON(t, router, http.MethodDelete, "/api/v1/cart/items/prod-003", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeCart(t, env)
	assert.Empty(t, body.Items)
}

func TestCartAPI_Clear(t *testing.T) {
	router := setupRouter(t)
	token := login(t, router, "shopper@example.com")

	_, _ = doJSON(t, router, http.MethodPost, "/api/v1/cart/items", token,
		map[string]string{"product_id": "prod-002"})

	rec, env := doJSON(t, router, http.MethodDelete, "/api/v1/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeCart(t, env)
	assert.Empty(t, body.Items)
	assert.Zero(t, body.TotalAmount)
}

func TestCartAPI_PerSession(t *testing.T) {
	router := setupRouter(t)
	alice := login(t, router, "alice@example.com")
	bob := login(t, router, "bob@example.com")

	_, _ = doJSON(t, router, http.MethodPost, "/api/v1/cart/items", alice,
		map[string]string{"product_id": "prod-004"})

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/cart", bob, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeCart(t, env).Items)
}

func TestCartAPI_ValidationError(t *testing.T) {
	router := setupRouter(t)
	token := login(t, router, "shopper@example.com")

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", token,
		map[string]string{})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
}
