package storefront

import (
	"context"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tair/storefront/internal/catalog/domain"
)

// ViewState is the catalog grid's position in its load cycle
type ViewState int

const (
	StateIdle ViewState = iota
	StateLoading
	StateAccumulating
	StateExhausted
)

func (s ViewState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateAccumulating:
		return "accumulating"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// SortOrder selects the display order of the grid
type SortOrder string

const (
	SortNone      SortOrder = ""
	SortName      SortOrder = "name"
	SortPriceLow  SortOrder = "priceLow"
	SortPriceHigh SortOrder = "priceHigh"
)

// ParseSortOrder accepts the sort names used on the command line
func ParseSortOrder(s string) (SortOrder, bool) {
	switch SortOrder(s) {
	case SortNone, SortName, SortPriceLow, SortPriceHigh:
		return SortOrder(s), true
	}
	return SortNone, false
}

// CatalogView composes the fetcher with search and sort projections.
// Search and sort never touch the accumulator.
type CatalogView struct {
	fetcher *Fetcher
	source  CatalogSource

	mu       sync.Mutex
	search   string
	order    SortOrder
	collator *collate.Collator
}

// NewCatalogView creates a view over fetcher; names sort by the rules of tag
func NewCatalogView(fetcher *Fetcher, source CatalogSource, tag language.Tag) *CatalogView {
	return &CatalogView{
		fetcher:  fetcher,
		source:   source,
		collator: collate.New(tag, collate.IgnoreCase),
	}
}

// State returns the view state and the page it refers to
func (v *CatalogView) State() (ViewState, int) {
	f := v.fetcher
	f.mu.Lock()
	page, hasMore := f.page, f.hasMore
	f.mu.Unlock()

	switch {
	case page == 0 && f.loading():
		return StateLoading, 1
	case page == 0:
		return StateIdle, 0
	case !hasMore:
		return StateExhausted, page
	default:
		return StateAccumulating, page
	}
}

// Start loads the first page of the active filter
func (v *CatalogView) Start(ctx context.Context) error {
	return v.fetcher.LoadPage(ctx, 1, v.fetcher.Category())
}

// SetCategory switches the filter and loads its first page
func (v *CatalogView) SetCategory(ctx context.Context, category string) error {
	v.fetcher.ResetForFilter(category)
	return v.fetcher.LoadPage(ctx, 1, category)
}

// OnLastItemVisible forwards the scroll signal to the fetcher
func (v *CatalogView) OnLastItemVisible(ctx context.Context) (bool, error) {
	return v.fetcher.OnLastItemVisible(ctx)
}

// SetSearch sets the case-insensitive title filter; empty shows everything
func (v *CatalogView) SetSearch(query string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.search = strings.ToLower(strings.TrimSpace(query))
}

// SetSort sets the display order
func (v *CatalogView) SetSort(order SortOrder) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.order = order
}

// Visible returns the accumulator filtered by the search and ordered by the sort
func (v *CatalogView) Visible() []Product {
	products := v.fetcher.Products()

	v.mu.Lock()
	defer v.mu.Unlock()

	out := products[:0]
	for _, p := range products {
		if v.search == "" || strings.Contains(strings.ToLower(p.Title), v.search) {
			out = append(out, p)
		}
	}

	switch v.order {
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return v.collator.CompareString(out[i].Title, out[j].Title) < 0
		})
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.GreaterThan(out[j].Price) })
	}
	return out
}

// Categories returns the filter choices, "All" first. When the catalog source
// cannot be reached the categories seen in the accumulator are offered instead.
func (v *CatalogView) Categories(ctx context.Context) ([]string, error) {
	categories, err := v.source.Categories(ctx)
	if err != nil {
		categories = v.seenCategories()
	}
	return append([]string{domain.AllCategories}, categories...), err
}

func (v *CatalogView) seenCategories() []string {
	set := make(map[string]struct{})
	var out []string
	for _, p := range v.fetcher.Products() {
		if _, ok := set[p.Category]; ok || p.Category == "" {
			continue
		}
		set[p.Category] = struct{}{}
		out = append(out, p.Category)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.collator.SortStrings(out)
	return out
}
