package query

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/pkg/apperr"
)

const maxPageSize = 100

// ListProductsQuery represents the query to list one catalog page
type ListProductsQuery struct {
	Category string // "All" or empty means unfiltered
	Page     int    // 1-based
	Limit    int
}

// ProductPage is one page of the catalog listing
type ProductPage struct {
	Products []domain.Product `json:"products"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
	Total    int              `json:"total"`
	HasMore  bool             `json:"has_more"`
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.CatalogRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.CatalogRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(ctx context.Context, query ListProductsQuery) (*ProductPage, error) {
	if query.Page < 1 {
		return nil, apperr.Validation("page must be at least 1")
	}
	if query.Limit <= 0 {
		query.Limit = domain.DefaultPageSize
	}
	if query.Limit > maxPageSize {
		query.Limit = maxPageSize
	}

	products, err := h.repo.FindAll(ctx, domain.NormalizeCategory(query.Category))
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	total := len(products)
	start := (query.Page - 1) * query.Limit
	if start > total {
		start = total
	}
	end := start + query.Limit
	if end > total {
		end = total
	}

	page := make([]domain.Product, end-start)
	copy(page, products[start:end])

	return &ProductPage{
		Products: page,
		Page:     query.Page,
		Limit:    query.Limit,
		Total:    total,
		HasMore:  end < total,
	}, nil
}
