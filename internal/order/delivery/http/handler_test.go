package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdomain "github.com/tair/storefront/internal/cart/domain"
	cartrepo "github.com/tair/storefront/internal/cart/repository"
	cartcommand "github.com/tair/storefront/internal/cart/usecase/command"
	"github.com/tair/storefront/internal/order/domain"
	"github.com/tair/storefront/internal/order/repository"
	"github.com/tair/storefront/internal/order/usecase/command"
	"github.com/tair/storefront/internal/order/usecase/query"
	"github.com/tair/storefront/internal/testutil"
	"github.com/tair/storefront/pkg/auth"
	"github.com/tair/storefront/pkg/middleware"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func TestCheckoutAndTrack(t *testing.T) {
	db := testutil.NewSQLiteDB(t, &cartdomain.CartItem{}, &domain.Order{}, &domain.OrderItem{})
	carts := cartrepo.NewGormCartRepository(db)
	orders := repository.NewGormOrderRepository(db)
	jwt := auth.NewJWTManager("test-secret", time.Hour)

	h := NewOrderHandler(
		command.NewCheckoutHandler(orders, carts, cartcommand.NewClearCartHandler(carts), nil),
		query.NewListOrdersHandler(orders),
		query.NewGetOrderHandler(orders),
		jwt,
		middleware.NewMetrics("order_test", nil),
	)
	router := mux.NewRouter()
	h.RegisterRoutes(router)

	call := func(userID uint, method, target string, body interface{}) (int, envelope) {
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req := httptest.NewRequest(method, target, &buf)
		token, err := jwt.GenerateToken(userID, "shopper@example.com")
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		var env envelope
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
		return rec.Code, env
	}

	code, _ := call(1, http.MethodPost, "/api/checkout", nil)
	assert.Equal(t, http.StatusBadRequest, code, "empty cart")

	require.NoError(t, carts.Create(context.Background(), &cartdomain.CartItem{
		UserID: 1, ProductID: 3, Title: "Jacket", Price: decimal.RequireFromString("55.99"), Image: "j.png", Quantity: 2,
	}))

	code, env := call(1, http.MethodPost, "/api/checkout", map[string]string{"payment_method": "paypal"})
	require.Equal(t, http.StatusCreated, code, env.Error)

	var placed domain.Order
	require.NoError(t, json.Unmarshal(env.Data, &placed))
	assert.Equal(t, "111.98", placed.Amount.StringFixed(2))
	assert.Equal(t, "paypal", placed.PaymentMethod)

	code, env = call(1, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, code)
	var list []domain.Order
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)

	code, _ = call(1, http.MethodGet, "/api/orders/"+placed.OrderID, nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = call(2, http.MethodGet, "/api/orders/"+placed.OrderID, nil)
	assert.Equal(t, http.StatusNotFound, code)
}
