package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/storefront/internal/order/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// ListOrdersQuery represents the query to list a user's orders
type ListOrdersQuery struct {
	UserID uint
}

// ListOrdersHandler handles list orders query
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle executes the list orders query
func (h *ListOrdersHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]domain.Order, error) {
	if query.UserID == 0 {
		return nil, apperr.Validation("user_id is required")
	}

	orders, err := h.repo.FindByUserID(ctx, query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// GetOrderQuery tracks a single order of the user
type GetOrderQuery struct {
	UserID  uint
	OrderID string
}

// GetOrderHandler handles get order query
type GetOrderHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

// Handle executes the get order query. Orders of other users are reported as not found.
func (h *GetOrderHandler) Handle(ctx context.Context, query GetOrderQuery) (*domain.Order, error) {
	if query.OrderID == "" {
		return nil, apperr.Validation("order_id is required")
	}

	order, err := h.repo.FindByOrderID(ctx, query.OrderID)
	if errors.Is(err, domain.ErrOrderNotFound) {
		return nil, apperr.NotFound("order %s", query.OrderID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order.UserID != query.UserID {
		return nil, apperr.NotFound("order %s", query.OrderID)
	}
	return order, nil
}
