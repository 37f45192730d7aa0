package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/tair/storefront/internal/cart/usecase/command"
	"github.com/tair/storefront/internal/cart/usecase/query"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/middleware"
	"github.com/tair/storefront/pkg/response"
)

// CartHandler handles HTTP requests for the cart using CQRS pattern
type CartHandler struct {
	// Command handlers
	addHandler    *command.AddItemHandler
	updateHandler *command.UpdateQuantityHandler
	removeHandler *command.RemoveItemHandler

	// Query handlers
	listHandler *query.ListItemsHandler

	tokens  middleware.TokenValidator
	metrics *middleware.Metrics
}

// NewCartHandler creates a new cart handler
func NewCartHandler(
	addHandler *command.AddItemHandler,
	updateHandler *command.UpdateQuantityHandler,
	removeHandler *command.RemoveItemHandler,
	listHandler *query.ListItemsHandler,
	tokens middleware.TokenValidator,
	metrics *middleware.Metrics,
) *CartHandler {
	return &CartHandler{
		addHandler:    addHandler,
		updateHandler: updateHandler,
		removeHandler: removeHandler,
		listHandler:   listHandler,
		tokens:        tokens,
		metrics:       metrics,
	}
}

// RegisterRoutes registers the cart routes; all of them require a bearer token
func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	authed := middleware.Auth(h.tokens)

	router.HandleFunc("/api/cart", h.metrics.Wrap("/api/cart", authed(h.ListItems))).Methods("GET")
	router.HandleFunc("/api/cart", h.metrics.Wrap("/api/cart", authed(h.AddItem))).Methods("POST")
	router.HandleFunc("/api/cart", h.metrics.Wrap("/api/cart", authed(h.UpdateQuantity))).Methods("PATCH")
	router.HandleFunc("/api/cart", h.metrics.Wrap("/api/cart", authed(h.RemoveItem))).Methods("DELETE")
}

// AddItem handles POST /api/cart
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req struct {
		UserID    uint            `json:"user_id"`
		ProductID int             `json:"product_id"`
		Title     string          `json:"title"`
		Price     decimal.Decimal `json:"price"`
		Image     string          `json:"image"`
		Quantity  *int            `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID != 0 && req.UserID != userID {
		response.Error(w, http.StatusForbidden, "Cannot modify another user's cart")
		return
	}

	item, err := h.addHandler.Handle(r.Context(), command.AddItemCommand{
		UserID:    userID,
		ProductID: req.ProductID,
		Title:     req.Title,
		Price:     req.Price,
		Image:     req.Image,
		Quantity:  req.Quantity,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Uint("user_id", userID).Msg("Failed to add cart item")
		response.FromError(w, err)
		return
	}

	h.metrics.Mutation("cart_add")
	logger.Info(r.Context()).
		Uint("user_id", userID).
		Uint("cart_item_id", item.ID).
		Int("product_id", item.ProductID).
		Msg("Cart item added")

	response.OK(w, http.StatusCreated, "Cart item added successfully", item)
}

// ListItems handles GET /api/cart?userId=
func (h *CartHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	if raw := r.URL.Query().Get("userId"); raw != "" {
		requested, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid user ID")
			return
		}
		if uint(requested) != userID {
			response.Error(w, http.StatusForbidden, "Cannot read another user's cart")
			return
		}
	}

	summary, err := h.listHandler.Handle(r.Context(), query.ListItemsQuery{UserID: userID})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list cart items")
		response.FromError(w, err)
		return
	}

	response.OK(w, http.StatusOK, "", summary)
}

// UpdateQuantity handles PATCH /api/cart
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req struct {
		CartItemID uint `json:"cart_item_id"`
		Quantity   int  `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.updateHandler.Handle(r.Context(), command.UpdateQuantityCommand{
		UserID:     userID,
		CartItemID: req.CartItemID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Uint("cart_item_id", req.CartItemID).Msg("Failed to update cart item quantity")
		response.FromError(w, err)
		return
	}

	h.metrics.Mutation("cart_update")
	response.OK(w, http.StatusOK, "Cart item quantity updated successfully", item)
}

// RemoveItem handles DELETE /api/cart?cartItemId=
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("cartItemId")
	if raw == "" {
		response.Error(w, http.StatusBadRequest, "Cart item ID is required")
		return
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid cart item ID")
		return
	}

	item, err := h.removeHandler.Handle(r.Context(), command.RemoveItemCommand{CartItemID: uint(id)})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Uint64("cart_item_id", id).Msg("Failed to delete cart item")
		response.FromError(w, err)
		return
	}

	h.metrics.Mutation("cart_remove")
	response.OK(w, http.StatusOK, "Cart item deleted successfully", item)
}
