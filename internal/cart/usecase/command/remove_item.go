package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// RemoveItemCommand represents the command to delete a cart line
type RemoveItemCommand struct {
	CartItemID uint
}

// RemoveItemHandler handles cart line removal. The line id alone identifies
// what to delete.
type RemoveItemHandler struct {
	repo domain.CartRepository
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(repo domain.CartRepository) *RemoveItemHandler {
	return &RemoveItemHandler{repo: repo}
}

// Handle executes the remove item command
func (h *RemoveItemHandler) Handle(ctx context.Context, cmd RemoveItemCommand) (*domain.CartItem, error) {
	if cmd.CartItemID == 0 {
		return nil, apperr.Validation("cartItemId is required")
	}

	item, err := h.repo.FindByID(ctx, cmd.CartItemID)
	if errors.Is(err, domain.ErrCartItemNotFound) {
		return nil, apperr.NotFound("cart item %d", cmd.CartItemID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart item: %w", err)
	}

	if err := h.repo.Delete(ctx, cmd.CartItemID); err != nil {
		if errors.Is(err, domain.ErrCartItemNotFound) {
			return nil, apperr.NotFound("cart item %d", cmd.CartItemID)
		}
		return nil, fmt.Errorf("failed to delete cart item: %w", err)
	}

	return item, nil
}
