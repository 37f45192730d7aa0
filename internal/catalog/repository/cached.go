package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/pkg/logger"
)

var tracer = otel.Tracer("catalog-repository")

// Cache is the key/value store used for catalog listings
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// CachedRepository decorates a CatalogRepository with a read-through cache.
// Concurrent misses for the same key share one upstream call.
type CachedRepository struct {
	next   domain.CatalogRepository
	cache  Cache
	ttl    time.Duration
	group  singleflight.Group
	lookup *prometheus.CounterVec
}

// NewCachedRepository wraps next; a nil cache only coalesces concurrent calls
func NewCachedRepository(next domain.CatalogRepository, cache Cache, ttl time.Duration, reg prometheus.Registerer) *CachedRepository {
	lookup := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_lookups_total",
			Help: "Catalog cache lookups by result",
		},
		[]string{"kind", "result"},
	)
	if reg != nil {
		reg.MustRegister(lookup)
	}

	return &CachedRepository{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		lookup: lookup,
	}
}

func (r *CachedRepository) FindAll(ctx context.Context, category string) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(attribute.String("query.category", category)),
	)
	defer span.End()

	var products []domain.Product
	err := r.cached(ctx, "products", "products:"+category, &products, func(ctx context.Context) (interface{}, error) {
		return r.next.FindAll(ctx, category)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}

func (r *CachedRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("product.id", id)),
	)
	defer span.End()

	var product domain.Product
	err := r.cached(ctx, "product", fmt.Sprintf("product:%d", id), &product, func(ctx context.Context) (interface{}, error) {
		return r.next.FindByID(ctx, id)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return &product, nil
}

func (r *CachedRepository) Categories(ctx context.Context) ([]string, error) {
	ctx, span := tracer.Start(ctx, "repository.Categories")
	defer span.End()

	var categories []string
	err := r.cached(ctx, "categories", "categories", &categories, func(ctx context.Context) (interface{}, error) {
		return r.next.Categories(ctx)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return categories, nil
}

// cached resolves key from the cache or through load, storing the result into dest
func (r *CachedRepository) cached(ctx context.Context, kind, key string, dest interface{}, load func(context.Context) (interface{}, error)) error {
	if r.cache != nil {
		hit, err := r.cache.Get(ctx, key, dest)
		if err != nil {
			logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Catalog cache read failed")
		}
		if hit {
			r.lookup.WithLabelValues(kind, "hit").Inc()
			return nil
		}
	}
	r.lookup.WithLabelValues(kind, "miss").Inc()

	v, err, shared := r.group.Do(key, func() (interface{}, error) {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if r.cache != nil {
			if err := r.cache.Set(ctx, key, value, r.ttl); err != nil {
				logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Catalog cache write failed")
			}
		}
		return value, nil
	})
	if err != nil {
		return err
	}

	logger.Debug(ctx).Str("cache_key", key).Bool("shared", shared).Msg("Catalog cache miss resolved")
	return assign(dest, v)
}

func assign(dest, v interface{}) error {
	switch d := dest.(type) {
	case *[]domain.Product:
		*d = v.([]domain.Product)
	case *domain.Product:
		*d = *v.(*domain.Product)
	case *[]string:
		*d = v.([]string)
	default:
		return fmt.Errorf("unsupported cache destination %T", dest)
	}
	return nil
}
