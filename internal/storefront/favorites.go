package storefront

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// FavoritesController adds and removes favorites and mirrors the confirmed
// state locally. Local state changes only after the store confirms.
type FavoritesController struct {
	store    FavoriteStore
	notifier Notifier

	mu    sync.Mutex
	items []FavoriteItem
}

// NewFavoritesController creates a favorites controller
func NewFavoritesController(store FavoriteStore, notifier Notifier) *FavoritesController {
	return &FavoritesController{store: store, notifier: orNop(notifier)}
}

// AddFavorite saves a product snapshot to the shopper's favorites
func (c *FavoritesController) AddFavorite(ctx context.Context, s Session, item NewFavorite) (*FavoriteItem, error) {
	if err := s.require(); err != nil {
		c.notifier.Failure(ctx, "Please log in to save favorites", err)
		return nil, err
	}
	if err := validateFavorite(item); err != nil {
		c.notifier.Failure(ctx, "Could not add to favorites", err)
		return nil, err
	}

	created, err := c.store.AddFavorite(ctx, s, item)
	if err != nil {
		c.notifier.Failure(ctx, "Could not add to favorites", err)
		return nil, err
	}

	c.mu.Lock()
	c.items = append(c.items, *created)
	c.mu.Unlock()

	c.notifier.Success(ctx, fmt.Sprintf("%s added to favorites", created.Title))
	return created, nil
}

func validateFavorite(item NewFavorite) error {
	// a zero price counts as missing
	if item.ProductID == 0 ||
		strings.TrimSpace(item.Title) == "" ||
		!item.Price.IsPositive() ||
		strings.TrimSpace(item.Image) == "" ||
		strings.TrimSpace(item.Description) == "" {
		return fmt.Errorf("%w: all fields are required", ErrValidation)
	}
	return nil
}

// RemoveFavorite deletes one of the shopper's favorites
func (c *FavoritesController) RemoveFavorite(ctx context.Context, s Session, favoriteID uint) error {
	if err := s.require(); err != nil {
		c.notifier.Failure(ctx, "Please log in to manage favorites", err)
		return err
	}
	if favoriteID == 0 {
		err := fmt.Errorf("%w: favorite id is required", ErrValidation)
		c.notifier.Failure(ctx, "Could not remove favorite", err)
		return err
	}

	if err := c.store.RemoveFavorite(ctx, s, favoriteID); err != nil {
		c.notifier.Failure(ctx, "Could not remove favorite", err)
		return err
	}

	c.mu.Lock()
	for i, item := range c.items {
		if item.ID == favoriteID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	c.notifier.Success(ctx, "Removed from favorites")
	return nil
}

// ListFavorites loads the shopper's favorites and replaces the local copy
func (c *FavoritesController) ListFavorites(ctx context.Context, s Session) ([]FavoriteItem, error) {
	if err := s.require(); err != nil {
		return nil, err
	}

	items, err := c.store.ListFavorites(ctx, s)
	if err != nil {
		c.notifier.Failure(ctx, "Could not load favorites", err)
		return nil, err
	}

	c.mu.Lock()
	c.items = append([]FavoriteItem(nil), items...)
	c.mu.Unlock()

	return items, nil
}

// Items returns a copy of the local favorites
func (c *FavoritesController) Items() []FavoriteItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]FavoriteItem(nil), c.items...)
}

// IsFavorite reports whether the product is among the local favorites
func (c *FavoritesController) IsFavorite(productID int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}
