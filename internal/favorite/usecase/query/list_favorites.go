package query

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/favorite/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// ListFavoritesQuery represents the query to list a user's favorites
type ListFavoritesQuery struct {
	UserID uint
}

// ListFavoritesHandler handles list favorites query
type ListFavoritesHandler struct {
	repo domain.FavoriteRepository
}

// NewListFavoritesHandler creates a new list favorites handler
func NewListFavoritesHandler(repo domain.FavoriteRepository) *ListFavoritesHandler {
	return &ListFavoritesHandler{repo: repo}
}

// Handle executes the list favorites query
func (h *ListFavoritesHandler) Handle(ctx context.Context, query ListFavoritesQuery) ([]domain.FavoriteItem, error) {
	if query.UserID == 0 {
		return nil, apperr.ErrUnauthorized
	}

	items, err := h.repo.FindByUserID(ctx, query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return items, nil
}
