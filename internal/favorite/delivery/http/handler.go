package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/tair/storefront/internal/favorite/usecase/command"
	"github.com/tair/storefront/internal/favorite/usecase/query"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/middleware"
	"github.com/tair/storefront/pkg/response"
)

// FavoriteHandler handles HTTP requests for favorites
type FavoriteHandler struct {
	addHandler    *command.AddFavoriteHandler
	removeHandler *command.RemoveFavoriteHandler
	listHandler   *query.ListFavoritesHandler

	tokens  middleware.TokenValidator
	metrics *middleware.Metrics
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(
	addHandler *command.AddFavoriteHandler,
	removeHandler *command.RemoveFavoriteHandler,
	listHandler *query.ListFavoritesHandler,
	tokens middleware.TokenValidator,
	metrics *middleware.Metrics,
) *FavoriteHandler {
	return &FavoriteHandler{
		addHandler:    addHandler,
		removeHandler: removeHandler,
		listHandler:   listHandler,
		tokens:        tokens,
		metrics:       metrics,
	}
}

// RegisterRoutes registers the favorite routes
func (h *FavoriteHandler) RegisterRoutes(router *mux.Router) {
	authed := middleware.Auth(h.tokens)

	router.HandleFunc("/api/favorite", h.metrics.Wrap("/api/favorite", authed(h.ListFavorites))).Methods("GET")
	router.HandleFunc("/api/favorite", h.metrics.Wrap("/api/favorite", authed(h.AddFavorite))).Methods("POST")
	router.HandleFunc("/api/favorite", h.metrics.Wrap("/api/favorite", authed(h.RemoveFavorite))).Methods("DELETE")
}

// AddFavorite handles POST /api/favorite
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req struct {
		ProductID   int             `json:"product_id"`
		Title       string          `json:"title"`
		Price       decimal.Decimal `json:"price"`
		Image       string          `json:"image"`
		Description string          `json:"description"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.addHandler.Handle(r.Context(), command.AddFavoriteCommand{
		UserID:      userID,
		ProductID:   req.ProductID,
		Title:       req.Title,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Uint("user_id", userID).Msg("Failed to add favorite")
		response.FromError(w, err)
		return
	}

	h.metrics.Mutation("favorite_add")
	response.OK(w, http.StatusCreated, "Favorite item added successfully", item)
}

// ListFavorites handles GET /api/favorite
func (h *FavoriteHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	items, err := h.listHandler.Handle(r.Context(), query.ListFavoritesQuery{UserID: userID})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list favorites")
		response.FromError(w, err)
		return
	}

	response.OK(w, http.StatusOK, "", map[string]interface{}{
		"favorite_items": items,
	})
}

// RemoveFavorite handles DELETE /api/favorite?id=
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	raw := r.URL.Query().Get("id")
	if raw == "" {
		response.Error(w, http.StatusBadRequest, "ID is required")
		return
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid favorite ID")
		return
	}

	if err := h.removeHandler.Handle(r.Context(), command.RemoveFavoriteCommand{
		UserID:     userID,
		FavoriteID: uint(id),
	}); err != nil {
		logger.Warn(r.Context()).Err(err).Uint64("favorite_id", id).Msg("Failed to delete favorite")
		response.FromError(w, err)
		return
	}

	h.metrics.Mutation("favorite_remove")
	response.OK(w, http.StatusOK, "Favorite item deleted successfully", nil)
}
