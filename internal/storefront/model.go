package storefront

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tair/storefront/internal/catalog/domain"
)

// Product is a catalog entry as served by the catalog source
type Product = domain.Product

// CartLine is one product/quantity line of the shopper's cart
type CartLine struct {
	ID        uint            `json:"id"`
	UserID    uint            `json:"user_id"`
	ProductID int             `json:"product_id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
}

// LineTotal returns price times quantity
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// NewCartLine is the payload of an add-to-cart request. A nil Quantity means 1.
type NewCartLine struct {
	ProductID int             `json:"product_id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  *int            `json:"quantity,omitempty"`
}

// FavoriteItem is a saved product snapshot
type FavoriteItem struct {
	ID          uint            `json:"id"`
	UserID      uint            `json:"user_id"`
	ProductID   int             `json:"product_id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewFavorite is the payload of an add-to-favorites request; every field is required
type NewFavorite struct {
	ProductID   int             `json:"product_id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
}

// NewFavoriteFromProduct snapshots a catalog product
func NewFavoriteFromProduct(p Product) NewFavorite {
	return NewFavorite{
		ProductID:   p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Image:       p.Image,
		Description: p.Description,
	}
}

// CatalogSource serves the read-only product catalog
type CatalogSource interface {
	FetchPage(ctx context.Context, category string, page, limit int) ([]Product, error)
	CountProducts(ctx context.Context, category string) (int, error)
	Categories(ctx context.Context) ([]string, error)
}

// CartStore is the persistence boundary for cart lines
type CartStore interface {
	ListCart(ctx context.Context, s Session) ([]CartLine, error)
	AddCartLine(ctx context.Context, s Session, line NewCartLine) (*CartLine, error)
	UpdateCartLine(ctx context.Context, s Session, lineID uint, quantity int) (*CartLine, error)
	RemoveCartLine(ctx context.Context, s Session, lineID uint) error
}

// FavoriteStore is the persistence boundary for favorites
type FavoriteStore interface {
	ListFavorites(ctx context.Context, s Session) ([]FavoriteItem, error)
	AddFavorite(ctx context.Context, s Session, item NewFavorite) (*FavoriteItem, error)
	RemoveFavorite(ctx context.Context, s Session, favoriteID uint) error
}
