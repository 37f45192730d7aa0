package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/catalog/usecase/query"
	"github.com/tair/storefront/pkg/middleware"
)

type stubCatalog struct{ products []domain.Product }

func (s stubCatalog) FindAll(_ context.Context, category string) ([]domain.Product, error) {
	if category == "" {
		return s.products, nil
	}
	var out []domain.Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s stubCatalog) FindByID(_ context.Context, id int) (*domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (s stubCatalog) Categories(context.Context) ([]string, error) {
	return []string{"hats", "shoes"}, nil
}

func newTestRouter() *mux.Router {
	var products []domain.Product
	for i := 1; i <= 25; i++ {
		category := "hats"
		if i > 22 {
			category = "shoes"
		}
		products = append(products, domain.Product{ID: i, Title: "P", Price: decimal.NewFromFloat(1.5), Category: category})
	}
	repo := stubCatalog{products: products}

	h := NewCatalogHandler(
		query.NewListProductsHandler(repo),
		query.NewCountProductsHandler(repo),
		query.NewGetProductHandler(repo),
		query.NewListCategoriesHandler(repo),
		middleware.NewMetrics("catalog_test", nil),
	)
	router := mux.NewRouter()
	h.RegisterRoutes(router)
	return router
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func do(t *testing.T, router http.Handler, target string) (int, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	var body envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return rec.Code, body
}

func TestListProducts(t *testing.T) {
	router := newTestRouter()

	code, body := do(t, router, "/api/catalog/products?page=2&category=All")
	require.Equal(t, http.StatusOK, code)

	var page query.ProductPage
	require.NoError(t, json.Unmarshal(body.Data, &page))
	assert.Len(t, page.Products, 5)
	assert.Equal(t, 25, page.Total)
	assert.False(t, page.HasMore)
}

func TestListProducts_BadPage(t *testing.T) {
	router := newTestRouter()

	code, body := do(t, router, "/api/catalog/products?page=abc")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, body.Success)

	code, _ = do(t, router, "/api/catalog/products?page=0")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCountProducts(t *testing.T) {
	router := newTestRouter()

	code, body := do(t, router, "/api/catalog/products/count?category=shoes")
	require.Equal(t, http.StatusOK, code)

	var data struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, 3, data.Total)
}

func TestGetProduct(t *testing.T) {
	router := newTestRouter()

	code, _ := do(t, router, "/api/catalog/products/3")
	assert.Equal(t, http.StatusOK, code)

	code, body := do(t, router, "/api/catalog/products/300")
	assert.Equal(t, http.StatusNotFound, code)
	assert.NotEmpty(t, body.Error)
}

func TestListCategories(t *testing.T) {
	code, body := do(t, newTestRouter(), "/api/catalog/categories")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"categories":["hats","shoes"]}`, string(body.Data))
}
