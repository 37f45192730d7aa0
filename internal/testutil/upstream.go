package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/tair/storefront/internal/catalog/domain"
)

// SampleCatalog returns n products; every fifth one is jewelery, the rest electronics
func SampleCatalog(n int) []domain.Product {
	products := make([]domain.Product, 0, n)
	for id := 1; id <= n; id++ {
		category := "electronics"
		if id%5 == 0 {
			category = "jewelery"
		}
		products = append(products, domain.Product{
			ID:          id,
			Title:       fmt.Sprintf("Item %02d", id),
			Price:       decimal.NewFromInt(int64(id)).Add(decimal.RequireFromString("0.99")),
			Description: "Description of item",
			Category:    category,
			Image:       fmt.Sprintf("https://img.example/%d.jpg", id),
		})
	}
	return products
}

// NewCatalogUpstream serves products in the upstream product API's format
func NewCatalogUpstream(t *testing.T, products []domain.Product) *httptest.Server {
	t.Helper()

	write := func(w http.ResponseWriter, v interface{}) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(v)
	}

	router := mux.NewRouter()
	router.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		write(w, products)
	})
	router.HandleFunc("/products/categories", func(w http.ResponseWriter, r *http.Request) {
		seen := make(map[string]bool)
		categories := []string{}
		for _, p := range products {
			if !seen[p.Category] {
				seen[p.Category] = true
				categories = append(categories, p.Category)
			}
		}
		sort.Strings(categories)
		write(w, categories)
	})
	router.HandleFunc("/products/category/{category}", func(w http.ResponseWriter, r *http.Request) {
		filtered := []domain.Product{}
		for _, p := range products {
			if p.Category == mux.Vars(r)["category"] {
				filtered = append(filtered, p)
			}
		}
		write(w, filtered)
	})
	router.HandleFunc("/products/{id:[0-9]+}", func(w http.ResponseWriter, r *http.Request) {
		for _, p := range products {
			if fmt.Sprint(p.ID) == mux.Vars(r)["id"] {
				write(w, p)
				return
			}
		}
		// unknown ids answer 200 with an empty body
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}
