package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/storefront/internal/catalog/usecase/query"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/middleware"
	"github.com/tair/storefront/pkg/response"
)

// CatalogHandler serves the paginated product catalog
type CatalogHandler struct {
	listHandler       *query.ListProductsHandler
	countHandler      *query.CountProductsHandler
	getHandler        *query.GetProductHandler
	categoriesHandler *query.ListCategoriesHandler

	metrics *middleware.Metrics
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(
	listHandler *query.ListProductsHandler,
	countHandler *query.CountProductsHandler,
	getHandler *query.GetProductHandler,
	categoriesHandler *query.ListCategoriesHandler,
	metrics *middleware.Metrics,
) *CatalogHandler {
	return &CatalogHandler{
		listHandler:       listHandler,
		countHandler:      countHandler,
		getHandler:        getHandler,
		categoriesHandler: categoriesHandler,
		metrics:           metrics,
	}
}

// RegisterRoutes registers the public catalog routes
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/catalog/products", h.metrics.Wrap("/api/catalog/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/catalog/products/count", h.metrics.Wrap("/api/catalog/products/count", h.CountProducts)).Methods("GET")
	router.HandleFunc("/api/catalog/products/{id:[0-9]+}", h.metrics.Wrap("/api/catalog/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/catalog/categories", h.metrics.Wrap("/api/catalog/categories", h.ListCategories)).Methods("GET")
}

// ListProducts handles GET /api/catalog/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid page")
			return
		}
		page = parsed
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.listHandler.Handle(r.Context(), query.ListProductsQuery{
		Category: r.URL.Query().Get("category"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list products")
		response.FromError(w, err)
		return
	}

	response.OK(w, http.StatusOK, "", result)
}

// CountProducts handles GET /api/catalog/products/count
func (h *CatalogHandler) CountProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	total, err := h.countHandler.Handle(r.Context(), query.CountProductsQuery{Category: category})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to count products")
		response.FromError(w, err)
		return
	}

	response.OK(w, http.StatusOK, "", map[string]interface{}{
		"category": category,
		"total":    total,
	})
}

// GetProduct handles GET /api/catalog/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.getHandler.Handle(r.Context(), query.GetProductQuery{ID: id})
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, http.StatusOK, "", product)
}

// ListCategories handles GET /api/catalog/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoriesHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list categories")
		response.FromError(w, err)
		return
	}

	response.OK(w, http.StatusOK, "", map[string]interface{}{
		"categories": categories,
	})
}
