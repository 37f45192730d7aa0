package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// UpdateQuantityCommand represents the command to change a line's quantity
type UpdateQuantityCommand struct {
	UserID     uint
	CartItemID uint
	Quantity   int
}

// UpdateQuantityHandler handles quantity update command
type UpdateQuantityHandler struct {
	repo domain.CartRepository
}

// NewUpdateQuantityHandler creates a new update quantity handler
func NewUpdateQuantityHandler(repo domain.CartRepository) *UpdateQuantityHandler {
	return &UpdateQuantityHandler{repo: repo}
}

// Handle executes the update quantity command
func (h *UpdateQuantityHandler) Handle(ctx context.Context, cmd UpdateQuantityCommand) (*domain.CartItem, error) {
	if cmd.CartItemID == 0 {
		return nil, apperr.Validation("cart_item_id is required")
	}
	if cmd.Quantity < 1 {
		return nil, apperr.Validation("quantity must be at least 1")
	}

	item, err := h.repo.FindByID(ctx, cmd.CartItemID)
	if errors.Is(err, domain.ErrCartItemNotFound) {
		return nil, apperr.NotFound("cart item %d", cmd.CartItemID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart item: %w", err)
	}
	// Other users' lines are reported as missing
	if item.UserID != cmd.UserID {
		return nil, apperr.NotFound("cart item %d", cmd.CartItemID)
	}

	if err := h.repo.UpdateQuantity(ctx, cmd.CartItemID, cmd.Quantity); err != nil {
		if errors.Is(err, domain.ErrCartItemNotFound) {
			return nil, apperr.NotFound("cart item %d", cmd.CartItemID)
		}
		return nil, fmt.Errorf("failed to update quantity: %w", err)
	}

	item.Quantity = cmd.Quantity
	return item, nil
}
