package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/pkg/circuitbreaker"
	"github.com/tair/storefront/pkg/logger"
)

// UpstreamRepository reads the catalog from the external product API
type UpstreamRepository struct {
	baseURL string
	client  *http.Client
	breaker *circuitbreaker.Breaker
}

// NewUpstreamRepository creates a catalog repository backed by the product API at baseURL
func NewUpstreamRepository(baseURL string, timeout time.Duration) *UpstreamRepository {
	return &UpstreamRepository{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		breaker: circuitbreaker.Default("catalog-upstream"),
	}
}

// Breaker exposes the circuit breaker guarding the upstream
func (r *UpstreamRepository) Breaker() *circuitbreaker.Breaker {
	return r.breaker
}

func (r *UpstreamRepository) FindAll(ctx context.Context, category string) ([]domain.Product, error) {
	path := "/products"
	if category != "" {
		path = "/products/category/" + url.PathEscape(category)
	}

	var products []domain.Product
	if err := r.getJSON(ctx, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *UpstreamRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	var product *domain.Product
	if err := r.getJSON(ctx, fmt.Sprintf("/products/%d", id), &product); err != nil {
		return nil, err
	}
	// The upstream answers unknown ids with 200 and an empty body
	if product == nil || product.ID == 0 {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func (r *UpstreamRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.getJSON(ctx, "/products/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// getJSON performs a GET through the circuit breaker. Only transport failures
// and 5xx answers count against the breaker.
func (r *UpstreamRepository) getJSON(ctx context.Context, path string, out interface{}) error {
	var body []byte
	var status int

	err := r.breaker.Call(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+path, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := r.client.Do(req)
		if err != nil {
			return fmt.Errorf("upstream request failed: %w", err)
		}
		defer resp.Body.Close()

		status = resp.StatusCode
		body, err = io.ReadAll(io.LimitReader(resp.Body, 8<<20))
		if err != nil {
			return fmt.Errorf("failed to read upstream response: %w", err)
		}
		if status >= http.StatusInternalServerError {
			return fmt.Errorf("upstream returned status %d", status)
		}
		return nil
	})
	if err != nil {
		logger.Error(ctx).Err(err).Str("path", path).Msg("Catalog upstream call failed")
		return err
	}

	if status == http.StatusNotFound {
		return domain.ErrProductNotFound
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("upstream returned status %d", status)
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode upstream response: %w", err)
	}
	return nil
}
