package storefront

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/storefront/internal/catalog/domain"
)

var tracer = otel.Tracer("storefront-client")

// Fetcher pages through the catalog for one category filter at a time and
// accumulates the distinct products it has seen in first-seen order.
//
// At most one page request is on the wire. Every load is stamped with the
// filter generation; ResetForFilter bumps the generation and cancels the
// request in flight, so results for a superseded filter are never merged.
type Fetcher struct {
	source   CatalogSource
	notifier Notifier
	pageSize int

	// flight is a one-slot semaphore held for the duration of a page request
	flight chan struct{}

	mu         sync.Mutex
	generation uint64
	category   string
	items      []Product
	seen       map[int]struct{}
	page       int
	total      int
	totalKnown bool
	hasMore    bool
	err        error
	totalErr   error
	cancel     context.CancelFunc
}

// NewFetcher creates a fetcher positioned before the first page of the unfiltered catalog
func NewFetcher(source CatalogSource, notifier Notifier) *Fetcher {
	return &Fetcher{
		source:   source,
		notifier: orNop(notifier),
		pageSize: domain.DefaultPageSize,
		flight:   make(chan struct{}, 1),
		seen:     make(map[int]struct{}),
		hasMore:  true,
	}
}

// ResetForFilter clears the accumulator and rewinds pagination to page 1.
// A load in flight for the previous filter is cancelled and its result dropped.
func (f *Fetcher) ResetForFilter(category string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked(domain.NormalizeCategory(category))
}

func (f *Fetcher) resetLocked(category string) {
	f.generation++
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.category = category
	f.items = nil
	f.seen = make(map[int]struct{})
	f.page = 0
	f.total = 0
	f.totalKnown = false
	f.hasMore = true
	f.err = nil
	f.totalErr = nil
}

// LoadPage fetches one 1-based page for category and merges it into the
// accumulator. A category other than the active one resets the fetcher first.
// A call made while another load is in flight waits for it to finish.
func (f *Fetcher) LoadPage(ctx context.Context, page int, category string) error {
	return f.load(ctx, page, category, true)
}

// OnLastItemVisible advances to the next page when more products remain.
// It reports whether a page was loaded; it never queues behind a load in flight.
func (f *Fetcher) OnLastItemVisible(ctx context.Context) (bool, error) {
	f.mu.Lock()
	if !f.hasMore {
		f.mu.Unlock()
		return false, nil
	}
	next, category := f.page+1, f.category
	f.mu.Unlock()

	if err := f.load(ctx, next, category, false); err != nil {
		return false, err
	}
	return true, nil
}

func (f *Fetcher) load(ctx context.Context, page int, category string, wait bool) error {
	if page < 1 {
		return fmt.Errorf("%w: page must be at least 1", ErrValidation)
	}
	category = domain.NormalizeCategory(category)

	f.mu.Lock()
	if category != f.category {
		f.resetLocked(category)
	}
	gen := f.generation
	f.mu.Unlock()

	if wait {
		select {
		case f.flight <- struct{}{}:
		case <-ctx.Done():
			return ctx.Err()
		}
	} else {
		select {
		case f.flight <- struct{}{}:
		default:
			return ErrLoadInFlight
		}
	}
	defer func() { <-f.flight }()

	f.mu.Lock()
	if gen != f.generation {
		f.mu.Unlock()
		return ErrSuperseded
	}
	loadCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	needTotal := !f.totalKnown
	f.mu.Unlock()
	defer cancel()

	loadCtx, span := tracer.Start(loadCtx, "fetcher.LoadPage",
		trace.WithAttributes(
			attribute.Int("catalog.page", page),
			attribute.String("catalog.category", category),
			attribute.Int64("catalog.generation", int64(gen)),
		),
	)
	defer span.End()

	var (
		total    int
		totalErr error
	)
	if needTotal {
		total, totalErr = f.source.CountProducts(loadCtx, category)
	}

	products, err := f.source.FetchPage(loadCtx, category, page, f.pageSize)

	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.generation {
		span.SetStatus(codes.Error, ErrSuperseded.Error())
		return ErrSuperseded
	}
	f.cancel = nil

	if needTotal {
		if totalErr != nil {
			f.totalErr = totalErr
			f.notifier.Failure(ctx, "Could not load the product count", totalErr)
		} else {
			f.total = total
			f.totalKnown = true
			f.totalErr = nil
		}
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		f.err = err
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		f.notifier.Failure(ctx, "Could not load products", err)
		return err
	}

	added := 0
	for _, p := range products {
		if _, dup := f.seen[p.ID]; dup {
			continue
		}
		f.seen[p.ID] = struct{}{}
		f.items = append(f.items, p)
		added++
	}

	if page > f.page {
		f.page = page
	}
	f.err = nil
	f.hasMore = len(products) == f.pageSize && (!f.totalKnown || len(f.items) < f.total)

	span.SetAttributes(
		attribute.Int("catalog.received", len(products)),
		attribute.Int("catalog.added", added),
		attribute.Bool("catalog.has_more", f.hasMore),
	)
	return nil
}

// Products returns a copy of the accumulator in first-seen order
func (f *Fetcher) Products() []Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Product, len(f.items))
	copy(out, f.items)
	return out
}

// HasMore reports whether another page may hold unseen products
func (f *Fetcher) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasMore
}

// Page returns the highest page merged for the active filter, 0 before the first load
func (f *Fetcher) Page() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.page
}

// Category returns the active filter; the empty string is the unfiltered catalog
func (f *Fetcher) Category() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.category
}

// Total returns the product count of the active filter once it is known
func (f *Fetcher) Total() (int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.total, f.totalKnown
}

// Err returns the error of the last failed page load, cleared by the next success
func (f *Fetcher) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// TotalErr returns the error of the last failed count request
func (f *Fetcher) TotalErr() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.totalErr
}

func (f *Fetcher) loading() bool {
	return len(f.flight) > 0
}
