package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/storefront/internal/order/usecase/command"
	"github.com/tair/storefront/internal/order/usecase/query"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/middleware"
	"github.com/tair/storefront/pkg/response"
)

// OrderHandler handles HTTP requests for checkout and order tracking
type OrderHandler struct {
	checkoutHandler *command.CheckoutHandler
	listHandler     *query.ListOrdersHandler
	getHandler      *query.GetOrderHandler

	tokens  middleware.TokenValidator
	metrics *middleware.Metrics
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	checkoutHandler *command.CheckoutHandler,
	listHandler *query.ListOrdersHandler,
	getHandler *query.GetOrderHandler,
	tokens middleware.TokenValidator,
	metrics *middleware.Metrics,
) *OrderHandler {
	return &OrderHandler{
		checkoutHandler: checkoutHandler,
		listHandler:     listHandler,
		getHandler:      getHandler,
		tokens:          tokens,
		metrics:         metrics,
	}
}

// RegisterRoutes registers the order routes; all of them require a bearer token
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	authed := middleware.Auth(h.tokens)

	router.HandleFunc("/api/checkout", h.metrics.Wrap("/api/checkout", authed(h.Checkout))).Methods("POST")
	router.HandleFunc("/api/orders", h.metrics.Wrap("/api/orders", authed(h.ListOrders))).Methods("GET")
	router.HandleFunc("/api/orders/{orderId}", h.metrics.Wrap("/api/orders/{orderId}", authed(h.GetOrder))).Methods("GET")
}

// Checkout handles POST /api/checkout
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req struct {
		PaymentMethod string `json:"payment_method"`
		Currency      string `json:"currency"`
	}

	// the body is optional
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.checkoutHandler.Handle(r.Context(), command.CheckoutCommand{
		UserID:        userID,
		PaymentMethod: req.PaymentMethod,
		Currency:      req.Currency,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Uint("user_id", userID).Msg("Checkout failed")
		response.FromError(w, err)
		return
	}

	h.metrics.Mutation("checkout")
	logger.Info(r.Context()).
		Uint("user_id", userID).
		Str("order_id", order.OrderID).
		Str("amount", order.Amount.StringFixed(2)).
		Msg("Order placed")

	response.OK(w, http.StatusCreated, "Order placed successfully", order)
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	orders, err := h.listHandler.Handle(r.Context(), query.ListOrdersQuery{UserID: userID})
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("user_id", userID).Msg("Failed to list orders")
		response.FromError(w, err)
		return
	}

	response.OK(w, http.StatusOK, "", orders)
}

// GetOrder handles GET /api/orders/{orderId}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	orderID := mux.Vars(r)["orderId"]

	order, err := h.getHandler.Handle(r.Context(), query.GetOrderQuery{UserID: userID, OrderID: orderID})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Str("order_id", orderID).Msg("Failed to get order")
		response.FromError(w, err)
		return
	}

	response.OK(w, http.StatusOK, "", order)
}
