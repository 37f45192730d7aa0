package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/internal/cart/repository"
	"github.com/tair/storefront/internal/cart/usecase/command"
	"github.com/tair/storefront/internal/cart/usecase/query"
	"github.com/tair/storefront/internal/testutil"
	"github.com/tair/storefront/pkg/auth"
	"github.com/tair/storefront/pkg/middleware"
)

type fixture struct {
	router *mux.Router
	jwt    *auth.JWTManager
}

func newFixture(t *testing.T) *fixture {
	repo := repository.NewGormCartRepository(testutil.NewSQLiteDB(t, &domain.CartItem{}))
	jwt := auth.NewJWTManager("test-secret", time.Hour)

	h := NewCartHandler(
		command.NewAddItemHandler(repo),
		command.NewUpdateQuantityHandler(repo),
		command.NewRemoveItemHandler(repo),
		query.NewListItemsHandler(repo),
		jwt,
		middleware.NewMetrics("cart_test", nil),
	)
	router := mux.NewRouter()
	h.RegisterRoutes(router)
	return &fixture{router: router, jwt: jwt}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (f *fixture) do(t *testing.T, userID uint, method, target string, body interface{}) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if userID != 0 {
		token, err := f.jwt.GenerateToken(userID, fmt.Sprintf("u%d@example.com", userID))
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return rec.Code, env
}

func (f *fixture) addCap(t *testing.T, userID uint) domain.CartItem {
	t.Helper()
	code, env := f.do(t, userID, http.MethodPost, "/api/cart", map[string]interface{}{
		"product_id": 7,
		"title":      "Cap",
		"price":      19.99,
		"image":      "img.png",
	})
	require.Equal(t, http.StatusCreated, code, env.Error)

	var item domain.CartItem
	require.NoError(t, json.Unmarshal(env.Data, &item))
	return item
}

func TestAddItem(t *testing.T) {
	f := newFixture(t)

	item := f.addCap(t, 1)
	assert.Equal(t, uint(1), item.UserID)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, "19.99", item.Price.StringFixed(2))
}

func TestAddItem_Unauthenticated(t *testing.T) {
	f := newFixture(t)

	code, env := f.do(t, 0, http.MethodPost, "/api/cart", map[string]interface{}{"product_id": 7})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, env.Success)
}

func TestAddItem_ForeignUserID(t *testing.T) {
	f := newFixture(t)

	code, _ := f.do(t, 1, http.MethodPost, "/api/cart", map[string]interface{}{
		"user_id": 2, "product_id": 7, "title": "Cap", "price": 1, "image": "i",
	})
	assert.Equal(t, http.StatusForbidden, code)
}

func TestAddItem_RejectsZeroQuantity(t *testing.T) {
	f := newFixture(t)

	code, env := f.do(t, 1, http.MethodPost, "/api/cart", map[string]interface{}{
		"product_id": 7, "title": "Cap", "price": 1, "image": "i", "quantity": 0,
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Error, "quantity")
}

func TestListItems(t *testing.T) {
	f := newFixture(t)
	f.addCap(t, 1)
	f.addCap(t, 1)
	f.addCap(t, 2)

	code, env := f.do(t, 1, http.MethodGet, "/api/cart?userId=1", nil)
	require.Equal(t, http.StatusOK, code)

	var summary query.CartSummary
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Len(t, summary.Items, 2)
	assert.Equal(t, "39.98", summary.Subtotal.StringFixed(2))

	code, _ = f.do(t, 1, http.MethodGet, "/api/cart?userId=2", nil)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestUpdateQuantity(t *testing.T) {
	f := newFixture(t)
	item := f.addCap(t, 1)

	code, env := f.do(t, 1, http.MethodPatch, "/api/cart", map[string]interface{}{
		"cart_item_id": item.ID, "quantity": 4,
	})
	require.Equal(t, http.StatusOK, code, env.Error)

	var updated domain.CartItem
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, 4, updated.Quantity)

	code, _ = f.do(t, 1, http.MethodPatch, "/api/cart", map[string]interface{}{
		"cart_item_id": item.ID, "quantity": 0,
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = f.do(t, 1, http.MethodPatch, "/api/cart", map[string]interface{}{
		"cart_item_id": 999, "quantity": 2,
	})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRemoveItem(t *testing.T) {
	f := newFixture(t)
	item := f.addCap(t, 1)

	target := fmt.Sprintf("/api/cart?cartItemId=%d", item.ID)

	code, env := f.do(t, 1, http.MethodDelete, target, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Cart item deleted successfully", env.Message)

	code, _ = f.do(t, 1, http.MethodDelete, target, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = f.do(t, 1, http.MethodDelete, "/api/cart", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}
