package query

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// ListItemsQuery represents the query to list a user's cart
type ListItemsQuery struct {
	UserID uint
}

// CartSummary is a user's cart with its totals. Shipping and tax are always zero.
type CartSummary struct {
	Items    []domain.CartItem `json:"items"`
	Subtotal decimal.Decimal   `json:"subtotal"`
	Shipping decimal.Decimal   `json:"shipping"`
	Tax      decimal.Decimal   `json:"tax"`
	Total    decimal.Decimal   `json:"total"`
}

// ListItemsHandler handles list cart items query
type ListItemsHandler struct {
	repo domain.CartRepository
}

// NewListItemsHandler creates a new list items handler
func NewListItemsHandler(repo domain.CartRepository) *ListItemsHandler {
	return &ListItemsHandler{repo: repo}
}

// Handle executes the list items query
func (h *ListItemsHandler) Handle(ctx context.Context, query ListItemsQuery) (*CartSummary, error) {
	if query.UserID == 0 {
		return nil, apperr.Validation("user_id is required")
	}

	items, err := h.repo.FindByUserID(ctx, query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	subtotal := domain.Subtotal(items)
	return &CartSummary{
		Items:    items,
		Subtotal: subtotal,
		Shipping: decimal.Zero,
		Tax:      decimal.Zero,
		Total:    subtotal,
	}, nil
}
