package query

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/catalog/domain"
)

// CountProductsQuery represents the query to count the products of a category
type CountProductsQuery struct {
	Category string
}

// CountProductsHandler handles count products query
type CountProductsHandler struct {
	repo domain.CatalogRepository
}

// NewCountProductsHandler creates a new count products handler
func NewCountProductsHandler(repo domain.CatalogRepository) *CountProductsHandler {
	return &CountProductsHandler{repo: repo}
}

// Handle executes the count products query
func (h *CountProductsHandler) Handle(ctx context.Context, query CountProductsQuery) (int, error) {
	products, err := h.repo.FindAll(ctx, domain.NormalizeCategory(query.Category))
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return len(products), nil
}
