package storefront

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// assistantPageSize matches the largest page the catalog serves
	assistantPageSize = 100
	assistantShown    = 3
)

// MatchProducts keeps the products where any whitespace separated term of query
// occurs in the title, category or description, ignoring case. Order is preserved.
func MatchProducts(products []Product, query string) []Product {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	var out []Product
	for _, p := range products {
		fields := []string{
			strings.ToLower(p.Title),
			strings.ToLower(p.Category),
			strings.ToLower(p.Description),
		}
		if anyTermIn(terms, fields) {
			out = append(out, p)
		}
	}
	return out
}

func anyTermIn(terms, fields []string) bool {
	for _, term := range terms {
		for _, field := range fields {
			if strings.Contains(field, term) {
				return true
			}
		}
	}
	return false
}

// Answer is the assistant's reply to one question
type Answer struct {
	Query   string    `json:"query"`
	Matches []Product `json:"matches"`
}

// Shown returns the products quoted in the reply text
func (a *Answer) Shown() []Product {
	if len(a.Matches) > assistantShown {
		return a.Matches[:assistantShown]
	}
	return a.Matches
}

// More reports whether matches were left out of the reply text
func (a *Answer) More() bool {
	return len(a.Matches) > assistantShown
}

// Text renders the reply shown to the shopper
func (a *Answer) Text() string {
	if len(a.Matches) == 0 {
		return "I couldn't find any products matching your description. " +
			"Try using different keywords or ask about a specific category."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I found %d products matching your search:\n", len(a.Matches))
	for _, p := range a.Shown() {
		fmt.Fprintf(&b, "\n- %s ($%s)", p.Title, p.Price.StringFixed(2))
	}
	if a.More() {
		b.WriteString("\n\n...and more. Can you be more specific about what you're looking for?")
	}
	return b.String()
}

// Assistant answers free-text product questions by keyword matching over the
// whole catalog
type Assistant struct {
	source CatalogSource
}

// NewAssistant creates an assistant reading from source
func NewAssistant(source CatalogSource) *Assistant {
	return &Assistant{source: source}
}

// Ask loads every catalog page and returns the products matching query
func (a *Assistant) Ask(ctx context.Context, query string) (*Answer, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: ask about a product or a category", ErrValidation)
	}

	ctx, span := tracer.Start(ctx, "Assistant.Ask",
		trace.WithAttributes(attribute.String("query", query)),
	)
	defer span.End()

	var all []Product
	for page := 1; ; page++ {
		products, err := a.source.FetchPage(ctx, "", page, assistantPageSize)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to load catalog")
			return nil, err
		}
		all = append(all, products...)
		if len(products) < assistantPageSize {
			break
		}
	}

	answer := &Answer{Query: query, Matches: MatchProducts(all, query)}
	span.SetAttributes(
		attribute.Int("catalog.size", len(all)),
		attribute.Int("matches", len(answer.Matches)),
	)
	span.SetStatus(codes.Ok, "")
	return answer, nil
}
