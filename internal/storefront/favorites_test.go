package storefront

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backpack() NewFavorite {
	return NewFavorite{
		ProductID:   1,
		Title:       "Fjallraven Backpack",
		Price:       decimal.RequireFromString("109.95"),
		Image:       "https://img.example/1.jpg",
		Description: "Your perfect pack for everyday use",
	}
}

func TestFavoritesController_AddFavorite(t *testing.T) {
	store := newStoreFake()
	rec := &recorder{}
	favorites := NewFavoritesController(store, rec)

	item, err := favorites.AddFavorite(context.Background(), shopper, backpack())
	require.NoError(t, err)

	assert.NotZero(t, item.ID)
	assert.True(t, favorites.IsFavorite(1))
	assert.False(t, favorites.IsFavorite(2))
	assert.True(t, rec.last().ok)
	assert.Equal(t, "Fjallraven Backpack added to favorites", rec.last().message)
}

func TestFavoritesController_AddFavoriteRequiresEveryField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*NewFavorite)
	}{
		{name: "product id", mutate: func(f *NewFavorite) { f.ProductID = 0 }},
		{name: "title", mutate: func(f *NewFavorite) { f.Title = "  " }},
		{name: "price", mutate: func(f *NewFavorite) { f.Price = decimal.Zero }},
		{name: "image", mutate: func(f *NewFavorite) { f.Image = "" }},
		{name: "description", mutate: func(f *NewFavorite) { f.Description = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStoreFake()
			rec := &recorder{}
			favorites := NewFavoritesController(store, rec)

			item := backpack()
			tt.mutate(&item)

			_, err := favorites.AddFavorite(context.Background(), shopper, item)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Zero(t, store.callCount())
			assert.Empty(t, favorites.Items())
			assert.False(t, rec.last().ok)
		})
	}
}

func TestFavoritesController_SnapshotFromProduct(t *testing.T) {
	store := newStoreFake()
	favorites := NewFavoritesController(store, nil)

	product := Product{
		ID:          3,
		Title:       "Mens Cotton Jacket",
		Price:       decimal.RequireFromString("55.99"),
		Image:       "https://img.example/3.jpg",
		Description: "Great outerwear jackets",
		Category:    "men's clothing",
	}

	item, err := favorites.AddFavorite(context.Background(), shopper, NewFavoriteFromProduct(product))
	require.NoError(t, err)
	assert.Equal(t, product.Title, item.Title)
	assert.True(t, product.Price.Equal(item.Price))
	assert.Equal(t, product.Description, item.Description)
}

func TestFavoritesController_RemoveForeignFavorite(t *testing.T) {
	store := newStoreFake()
	rec := &recorder{}
	favorites := NewFavoritesController(store, rec)
	ctx := context.Background()

	other := Session{UserID: 8, Token: "token-8"}
	foreign, err := NewFavoritesController(store, nil).AddFavorite(ctx, other, backpack())
	require.NoError(t, err)

	own, err := favorites.AddFavorite(ctx, shopper, backpack())
	require.NoError(t, err)

	err = favorites.RemoveFavorite(ctx, shopper, foreign.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, rec.last().ok)

	items := favorites.Items()
	require.Len(t, items, 1)
	assert.Equal(t, own.ID, items[0].ID)
}

func TestFavoritesController_RemoveFavorite(t *testing.T) {
	store := newStoreFake()
	favorites := NewFavoritesController(store, nil)
	ctx := context.Background()

	item, err := favorites.AddFavorite(ctx, shopper, backpack())
	require.NoError(t, err)

	require.NoError(t, favorites.RemoveFavorite(ctx, shopper, item.ID))
	assert.Empty(t, favorites.Items())
	assert.False(t, favorites.IsFavorite(item.ProductID))

	assert.ErrorIs(t, favorites.RemoveFavorite(ctx, shopper, 0), ErrValidation)
}

func TestFavoritesController_ListFavoritesIsIdempotent(t *testing.T) {
	store := newStoreFake()
	favorites := NewFavoritesController(store, nil)
	ctx := context.Background()

	_, err := favorites.AddFavorite(ctx, shopper, backpack())
	require.NoError(t, err)
	second := backpack()
	second.ProductID = 2
	second.Title = "Mens Casual Premium Slim Fit"
	_, err = favorites.AddFavorite(ctx, shopper, second)
	require.NoError(t, err)

	first, err := favorites.ListFavorites(ctx, shopper)
	require.NoError(t, err)
	again, err := favorites.ListFavorites(ctx, shopper)
	require.NoError(t, err)

	assert.Len(t, first, 2)
	assert.ElementsMatch(t, first, again)
	assert.ElementsMatch(t, first, favorites.Items())
}

func TestFavoritesController_RequiresSession(t *testing.T) {
	store := newStoreFake()
	favorites := NewFavoritesController(store, nil)

	_, err := favorites.AddFavorite(context.Background(), Session{}, backpack())
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = favorites.ListFavorites(context.Background(), Session{})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, store.callCount())
}
