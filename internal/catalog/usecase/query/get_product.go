package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// GetProductQuery represents the query to get one product
type GetProductQuery struct {
	ID int
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	repo domain.CatalogRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.CatalogRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(ctx context.Context, query GetProductQuery) (*domain.Product, error) {
	if query.ID <= 0 {
		return nil, apperr.Validation("invalid product id")
	}

	product, err := h.repo.FindByID(ctx, query.ID)
	if errors.Is(err, domain.ErrProductNotFound) {
		return nil, apperr.NotFound("product %d", query.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}
