package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// AddItemCommand represents the command to add a line to a cart
type AddItemCommand struct {
	UserID    uint
	ProductID int
	Title     string
	Price     decimal.Decimal
	Image     string
	Quantity  *int // Optional, defaults to 1
}

// AddItemHandler handles add-to-cart command
type AddItemHandler struct {
	repo domain.CartRepository
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(repo domain.CartRepository) *AddItemHandler {
	return &AddItemHandler{repo: repo}
}

// Handle executes the add item command. A second add of the same product
// creates a second line.
func (h *AddItemHandler) Handle(ctx context.Context, cmd AddItemCommand) (*domain.CartItem, error) {
	if cmd.UserID == 0 {
		return nil, apperr.Validation("user_id is required")
	}
	if cmd.ProductID <= 0 {
		return nil, apperr.Validation("product_id is required")
	}
	if strings.TrimSpace(cmd.Title) == "" {
		return nil, apperr.Validation("title is required")
	}
	// stored as NUMERIC(12,2)
	cmd.Price = cmd.Price.Round(2)
	if cmd.Price.IsNegative() {
		return nil, apperr.Validation("price cannot be negative")
	}

	quantity := 1
	if cmd.Quantity != nil {
		quantity = *cmd.Quantity
	}
	if quantity < 1 {
		return nil, apperr.Validation("quantity must be at least 1")
	}

	item := &domain.CartItem{
		UserID:    cmd.UserID,
		ProductID: cmd.ProductID,
		Title:     cmd.Title,
		Price:     cmd.Price,
		Image:     cmd.Image,
		Quantity:  quantity,
	}

	if err := h.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	return item, nil
}
