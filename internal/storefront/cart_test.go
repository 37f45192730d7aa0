package storefront

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shopper = Session{UserID: 7, Token: "token-7"}

func intPtr(v int) *int { return &v }

func shirt() NewCartLine {
	return NewCartLine{
		ProductID: 1,
		Title:     "Fjallraven Backpack",
		Price:     decimal.RequireFromString("19.99"),
		Image:     "https://img.example/1.jpg",
	}
}

func TestCartController_AddLineDefaultsToOne(t *testing.T) {
	store := newStoreFake()
	rec := &recorder{}
	cart := NewCartController(store, rec)

	line, err := cart.AddLine(context.Background(), shopper, shirt())
	require.NoError(t, err)

	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, uint(7), line.UserID)
	require.Len(t, cart.Lines(), 1)
	assert.True(t, cart.Totals().Subtotal.Equal(decimal.RequireFromString("19.99")))
	assert.True(t, rec.last().ok)
}

func TestCartController_AddLineValidation(t *testing.T) {
	tests := []struct {
		name string
		line NewCartLine
	}{
		{name: "zero quantity", line: func() NewCartLine { l := shirt(); l.Quantity = intPtr(0); return l }()},
		{name: "negative quantity", line: func() NewCartLine { l := shirt(); l.Quantity = intPtr(-2); return l }()},
		{name: "missing product", line: func() NewCartLine { l := shirt(); l.ProductID = 0; return l }()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStoreFake()
			cart := NewCartController(store, nil)

			_, err := cart.AddLine(context.Background(), shopper, tt.line)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Zero(t, store.callCount())
			assert.Empty(t, cart.Lines())
		})
	}
}

func TestCartController_RequiresSession(t *testing.T) {
	store := newStoreFake()
	rec := &recorder{}
	cart := NewCartController(store, rec)
	ctx := context.Background()

	_, err := cart.AddLine(ctx, Session{}, shirt())
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = cart.RemoveLine(ctx, Session{UserID: 7}, 1)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = cart.ListLines(ctx, Session{Token: "orphan"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	assert.Zero(t, store.callCount())
	assert.False(t, rec.last().ok)
}

func TestCartController_UpdateQuantityBelowOneIsRejectedLocally(t *testing.T) {
	store := newStoreFake()
	rec := &recorder{}
	cart := NewCartController(store, rec)
	ctx := context.Background()

	line, err := cart.AddLine(ctx, shopper, shirt())
	require.NoError(t, err)
	calls := store.callCount()

	err = cart.UpdateQuantity(ctx, shopper, line.ID, 0)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, calls, store.callCount())

	got, ok := cart.Line(line.ID)
	require.True(t, ok)
	assert.Equal(t, 1, got.Quantity)
	assert.Equal(t, "Quantity must be at least 1", rec.last().message)
}

func TestCartController_UpdateQuantityKeepsRequestedValue(t *testing.T) {
	store := newStoreFake()
	store.echoQty = 99
	cart := NewCartController(store, nil)
	ctx := context.Background()

	line, err := cart.AddLine(ctx, shopper, shirt())
	require.NoError(t, err)

	require.NoError(t, cart.UpdateQuantity(ctx, shopper, line.ID, 3))

	got, ok := cart.Line(line.ID)
	require.True(t, ok)
	assert.Equal(t, 3, got.Quantity)
	assert.True(t, cart.Totals().Total.Equal(decimal.RequireFromString("59.97")))
}

func TestCartController_FailedWritesLeaveLocalStateAlone(t *testing.T) {
	store := newStoreFake()
	rec := &recorder{}
	cart := NewCartController(store, rec)
	ctx := context.Background()

	line, err := cart.AddLine(ctx, shopper, shirt())
	require.NoError(t, err)

	store.mu.Lock()
	store.err = ErrTransport
	store.mu.Unlock()

	assert.ErrorIs(t, cart.UpdateQuantity(ctx, shopper, line.ID, 4), ErrTransport)
	assert.ErrorIs(t, cart.RemoveLine(ctx, shopper, line.ID), ErrTransport)
	_, err = cart.AddLine(ctx, shopper, shirt())
	assert.ErrorIs(t, err, ErrTransport)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, "Could not add to cart", rec.last().message)
	assert.ErrorIs(t, rec.last().err, ErrTransport)
}

func TestCartController_DuplicateAddCreatesSecondLine(t *testing.T) {
	store := newStoreFake()
	cart := NewCartController(store, nil)
	ctx := context.Background()

	_, err := cart.AddLine(ctx, shopper, shirt())
	require.NoError(t, err)
	_, err = cart.AddLine(ctx, shopper, shirt())
	require.NoError(t, err)

	lines, err := cart.ListLines(ctx, shopper)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.NotEqual(t, lines[0].ID, lines[1].ID)
	assert.Equal(t, lines[0].ProductID, lines[1].ProductID)
}

func TestCartController_RemoveLine(t *testing.T) {
	store := newStoreFake()
	cart := NewCartController(store, nil)
	ctx := context.Background()

	first, err := cart.AddLine(ctx, shopper, shirt())
	require.NoError(t, err)
	second, err := cart.AddLine(ctx, shopper, NewCartLine{
		ProductID: 2,
		Title:     "Mens Casual Slim Fit",
		Price:     decimal.RequireFromString("15.99"),
		Image:     "https://img.example/2.jpg",
		Quantity:  intPtr(2),
	})
	require.NoError(t, err)

	require.NoError(t, cart.RemoveLine(ctx, shopper, first.ID))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, second.ID, lines[0].ID)

	totals := cart.Totals()
	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("31.98")))
	assert.True(t, totals.Shipping.IsZero())
	assert.True(t, totals.Tax.IsZero())
	assert.True(t, totals.Total.Equal(totals.Subtotal))
}

func TestCartController_ListLinesScopedToSession(t *testing.T) {
	store := newStoreFake()
	cart := NewCartController(store, nil)
	ctx := context.Background()

	_, err := cart.AddLine(ctx, shopper, shirt())
	require.NoError(t, err)
	_, err = cart.AddLine(ctx, Session{UserID: 8, Token: "token-8"}, shirt())
	require.NoError(t, err)

	lines, err := cart.ListLines(ctx, shopper)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, uint(7), lines[0].UserID)
	assert.Len(t, cart.Lines(), 1)
}
