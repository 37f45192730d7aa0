package storefront

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(products []Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFetcher_PaginatesUntilExhausted(t *testing.T) {
	source := newCatalogFake(map[string][]Product{"": products(1, 25, "misc")})
	f := NewFetcher(source, nil)
	ctx := context.Background()

	require.NoError(t, f.LoadPage(ctx, 1, "All"))
	assert.Len(t, f.Products(), 20)
	assert.True(t, f.HasMore())

	require.NoError(t, f.LoadPage(ctx, 2, "All"))
	assert.Len(t, f.Products(), 25)
	assert.False(t, f.HasMore())

	total, known := f.Total()
	assert.True(t, known)
	assert.Equal(t, 25, total)
}

func TestFetcher_DeduplicatesAcrossPages(t *testing.T) {
	// pages 1 and 2 overlap on ids 15..20
	listing := append(products(1, 20, "misc"), products(15, 34, "misc")...)
	source := newCatalogFake(map[string][]Product{"": listing})
	f := NewFetcher(source, nil)
	ctx := context.Background()

	for page := 1; page <= 3; page++ {
		require.NoError(t, f.LoadPage(ctx, page, ""))
	}

	got := ids(f.Products())
	seen := make(map[int]bool)
	for _, id := range got {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, got, 34)
	// first-seen order is kept
	assert.Equal(t, 1, got[0])
	assert.Equal(t, 21, got[20])
}

func TestFetcher_ResetForFilter(t *testing.T) {
	source := newCatalogFake(map[string][]Product{
		"":            products(1, 30, "misc"),
		"electronics": products(100, 105, "electronics"),
	})
	f := NewFetcher(source, nil)
	ctx := context.Background()

	require.NoError(t, f.LoadPage(ctx, 1, "All"))
	require.NoError(t, f.LoadPage(ctx, 2, "All"))

	f.ResetForFilter("electronics")
	assert.Empty(t, f.Products())
	assert.Equal(t, 0, f.Page())
	assert.True(t, f.HasMore())

	loaded, err := f.OnLastItemVisible(ctx)
	require.NoError(t, err)
	assert.True(t, loaded)
	assert.Equal(t, 1, f.Page(), "first load after a reset targets page 1")
	assert.Equal(t, []int{100, 101, 102, 103, 104, 105}, ids(f.Products()))
	assert.False(t, f.HasMore())
}

func TestFetcher_CategoryChangeResetsImplicitly(t *testing.T) {
	source := newCatalogFake(map[string][]Product{
		"":         products(1, 20, "misc"),
		"jewelery": products(50, 52, "jewelery"),
	})
	f := NewFetcher(source, nil)
	ctx := context.Background()

	require.NoError(t, f.LoadPage(ctx, 1, "All"))
	require.NoError(t, f.LoadPage(ctx, 1, "jewelery"))

	assert.Equal(t, []int{50, 51, 52}, ids(f.Products()))
	assert.Equal(t, "jewelery", f.Category())
}

func TestFetcher_HasMoreUsesFilteredTotal(t *testing.T) {
	// a full first page with nothing after it
	source := newCatalogFake(map[string][]Product{
		"":        products(1, 60, "misc"),
		"clothes": products(200, 219, "clothes"),
	})
	f := NewFetcher(source, nil)

	require.NoError(t, f.LoadPage(context.Background(), 1, "clothes"))
	assert.Len(t, f.Products(), 20)
	assert.False(t, f.HasMore())

	loaded, err := f.OnLastItemVisible(context.Background())
	require.NoError(t, err)
	assert.False(t, loaded)
	assert.Equal(t, 1, source.fetchCount())
}

func TestFetcher_TransportErrorKeepsAccumulator(t *testing.T) {
	source := newCatalogFake(map[string][]Product{"": products(1, 40, "misc")})
	rec := &recorder{}
	f := NewFetcher(source, rec)
	ctx := context.Background()

	require.NoError(t, f.LoadPage(ctx, 1, ""))

	source.mu.Lock()
	source.fetchErr = ErrTransport
	source.mu.Unlock()

	err := f.LoadPage(ctx, 2, "")
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, f.Err(), ErrTransport)
	assert.Len(t, f.Products(), 20)
	assert.Equal(t, 1, f.Page())
	assert.False(t, rec.last().ok)

	source.mu.Lock()
	source.fetchErr = nil
	source.mu.Unlock()

	require.NoError(t, f.LoadPage(ctx, 2, ""))
	assert.NoError(t, f.Err())
	assert.Len(t, f.Products(), 40)
}

func TestFetcher_TotalFailureIsReportedSeparately(t *testing.T) {
	source := newCatalogFake(map[string][]Product{"": products(1, 25, "misc")})
	source.countErr = ErrTransport
	f := NewFetcher(source, nil)
	ctx := context.Background()

	require.NoError(t, f.LoadPage(ctx, 1, ""))
	assert.ErrorIs(t, f.TotalErr(), ErrTransport)
	assert.True(t, f.HasMore())

	// without a total the short page ends the listing
	require.NoError(t, f.LoadPage(ctx, 2, ""))
	assert.False(t, f.HasMore())
	assert.Len(t, f.Products(), 25)
}

func TestFetcher_ScrollTriggerIsDroppedWhileLoading(t *testing.T) {
	source := newCatalogFake(map[string][]Product{"": products(1, 60, "misc")})
	f := NewFetcher(source, nil)
	ctx := context.Background()

	release := source.hold(1)
	done := make(chan error, 1)
	go func() { done <- f.LoadPage(ctx, 1, "") }()
	<-source.started

	_, err := f.OnLastItemVisible(ctx)
	assert.ErrorIs(t, err, ErrLoadInFlight)

	release()
	require.NoError(t, <-done)
	assert.Equal(t, 1, source.fetchCount())
}

func TestFetcher_StaleResultIsDiscarded(t *testing.T) {
	source := newCatalogFake(map[string][]Product{
		"electronics": products(100, 110, "electronics"),
		"jewelery":    products(50, 52, "jewelery"),
	})
	f := NewFetcher(source, nil)
	ctx := context.Background()

	source.hold(1)
	done := make(chan error, 1)
	go func() { done <- f.LoadPage(ctx, 1, "electronics") }()
	<-source.started

	f.ResetForFilter("jewelery")
	assert.ErrorIs(t, <-done, ErrSuperseded)
	assert.Empty(t, f.Products())
	assert.NoError(t, f.Err())

	source.mu.Lock()
	delete(source.gates, 1)
	source.mu.Unlock()

	require.NoError(t, f.LoadPage(ctx, 1, "jewelery"))
	assert.Equal(t, []int{50, 51, 52}, ids(f.Products()))
}

func TestFetcher_ConcurrentLoadsMergeInRequestOrder(t *testing.T) {
	source := newCatalogFake(map[string][]Product{"": products(1, 100, "misc")})
	f := NewFetcher(source, nil)
	ctx := context.Background()

	// page 4 would come back first if both requests were on the wire
	release3 := source.hold(3)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		errs[0] = f.LoadPage(ctx, 3, "")
	}()
	require.Equal(t, 3, <-source.started)

	wg.Add(1)
	go func() {
		defer wg.Done()
		errs[1] = f.LoadPage(ctx, 4, "")
	}()

	release3()
	wg.Wait()
	require.NoError(t, errors.Join(errs...))

	got := ids(f.Products())
	assert.Len(t, got, 40)
	assert.Equal(t, 41, got[0])
	assert.Equal(t, 61, got[20])
	assert.Equal(t, 1, source.maxFlight)
	assert.Equal(t, 4, f.Page())
}

func TestFetcher_RejectsInvalidPage(t *testing.T) {
	source := newCatalogFake(nil)
	f := NewFetcher(source, nil)

	assert.ErrorIs(t, f.LoadPage(context.Background(), 0, ""), ErrValidation)
	assert.Zero(t, source.fetchCount())
}
