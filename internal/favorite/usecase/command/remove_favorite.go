package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/storefront/internal/favorite/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// RemoveFavoriteCommand represents the command to delete a favorite
type RemoveFavoriteCommand struct {
	UserID     uint
	FavoriteID uint
}

// RemoveFavoriteHandler handles remove favorite command
type RemoveFavoriteHandler struct {
	repo domain.FavoriteRepository
}

// NewRemoveFavoriteHandler creates a new remove favorite handler
func NewRemoveFavoriteHandler(repo domain.FavoriteRepository) *RemoveFavoriteHandler {
	return &RemoveFavoriteHandler{repo: repo}
}

// Handle executes the remove favorite command. Items owned by someone else
// are reported exactly like missing ones.
func (h *RemoveFavoriteHandler) Handle(ctx context.Context, cmd RemoveFavoriteCommand) error {
	if cmd.UserID == 0 {
		return apperr.ErrUnauthorized
	}
	if cmd.FavoriteID == 0 {
		return apperr.Validation("id is required")
	}

	item, err := h.repo.FindByID(ctx, cmd.FavoriteID)
	if errors.Is(err, domain.ErrFavoriteNotFound) || (err == nil && item.UserID != cmd.UserID) {
		return apperr.NotFound("favorite item not found or does not belong to the user")
	}
	if err != nil {
		return fmt.Errorf("failed to load favorite: %w", err)
	}

	if err := h.repo.Delete(ctx, cmd.FavoriteID); err != nil {
		if errors.Is(err, domain.ErrFavoriteNotFound) {
			return apperr.NotFound("favorite item not found or does not belong to the user")
		}
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	return nil
}
