package catalog

import (
	"time"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/catalog/repository"
	"github.com/tair/storefront/internal/catalog/usecase/query"
)

// UpstreamConfig locates the external product API
type UpstreamConfig struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// ProvideCatalogRepository provides the upstream catalog behind the read-through cache.
// cache may be nil when Redis is unavailable.
func ProvideCatalogRepository(cfg UpstreamConfig, cache repository.Cache, reg prometheus.Registerer) domain.CatalogRepository {
	upstream := repository.NewUpstreamRepository(cfg.BaseURL, cfg.Timeout)
	return repository.NewCachedRepository(upstream, cache, cfg.CacheTTL, reg)
}

// ProviderSet wires the catalog module up to its query handlers
var ProviderSet = wire.NewSet(
	ProvideCatalogRepository,
	query.NewListProductsHandler,
	query.NewCountProductsHandler,
	query.NewGetProductHandler,
	query.NewListCategoriesHandler,
)
