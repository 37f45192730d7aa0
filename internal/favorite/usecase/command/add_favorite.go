package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tair/storefront/internal/favorite/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// AddFavoriteCommand represents the command to save a product to favorites
type AddFavoriteCommand struct {
	UserID      uint
	ProductID   int
	Title       string
	Price       decimal.Decimal
	Image       string
	Description string
}

// AddFavoriteHandler handles add favorite command
type AddFavoriteHandler struct {
	repo domain.FavoriteRepository
}

// NewAddFavoriteHandler creates a new add favorite handler
func NewAddFavoriteHandler(repo domain.FavoriteRepository) *AddFavoriteHandler {
	return &AddFavoriteHandler{repo: repo}
}

// Handle executes the add favorite command. All five product fields are
// required; a zero price counts as missing.
func (h *AddFavoriteHandler) Handle(ctx context.Context, cmd AddFavoriteCommand) (*domain.FavoriteItem, error) {
	if cmd.UserID == 0 {
		return nil, apperr.ErrUnauthorized
	}
	// stored as NUMERIC(12,2); a price that rounds to zero is missing
	cmd.Price = cmd.Price.Round(2)
	if cmd.ProductID <= 0 ||
		strings.TrimSpace(cmd.Title) == "" ||
		!cmd.Price.IsPositive() ||
		strings.TrimSpace(cmd.Image) == "" ||
		strings.TrimSpace(cmd.Description) == "" {
		return nil, apperr.Validation("all fields are required")
	}

	item := &domain.FavoriteItem{
		UserID:      cmd.UserID,
		ProductID:   cmd.ProductID,
		Title:       cmd.Title,
		Price:       cmd.Price,
		Image:       cmd.Image,
		Description: cmd.Description,
	}

	if err := h.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}

	return item, nil
}
