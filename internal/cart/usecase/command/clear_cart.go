package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// ClearCartCommand empties a user's cart after an order was placed
type ClearCartCommand struct {
	UserID uint
}

// ClearCartHandler handles clear cart command
type ClearCartHandler struct {
	repo domain.CartRepository
}

// NewClearCartHandler creates a new clear cart handler
func NewClearCartHandler(repo domain.CartRepository) *ClearCartHandler {
	return &ClearCartHandler{repo: repo}
}

// Handle executes the clear cart command and returns the number of removed lines
func (h *ClearCartHandler) Handle(ctx context.Context, cmd ClearCartCommand) (int64, error) {
	if cmd.UserID == 0 {
		return 0, apperr.Validation("user_id is required")
	}

	n, err := h.repo.DeleteByUserID(ctx, cmd.UserID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear cart: %w", err)
	}
	return n, nil
}
