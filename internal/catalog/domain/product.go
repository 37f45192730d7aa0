package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// AllCategories is the filter value meaning "no category filter"
const AllCategories = "All"

// DefaultPageSize is the number of products per catalog page
const DefaultPageSize = 20

var ErrProductNotFound = errors.New("product not found")

// Rating is the aggregate review score of a product
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product is a read-only catalog entry sourced from the upstream product API
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Rating      *Rating         `json:"rating,omitempty"`
}

// NormalizeCategory maps "All" and the empty string to the unfiltered listing
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if strings.EqualFold(category, AllCategories) {
		return ""
	}
	return category
}

// CatalogRepository defines the contract for catalog data access.
// The upstream API exposes whole listings, so pagination happens above this layer.
type CatalogRepository interface {
	FindAll(ctx context.Context, category string) ([]Product, error)
	FindByID(ctx context.Context, id int) (*Product, error)
	Categories(ctx context.Context) ([]string, error)
}
