package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/storefront/internal/favorite/domain"
)

var tracer = otel.Tracer("favorite-repository")

// TracingFavoriteRepository wraps a FavoriteRepository with tracing
type TracingFavoriteRepository struct {
	next domain.FavoriteRepository
}

// NewTracingFavoriteRepository creates a new repository with tracing
func NewTracingFavoriteRepository(next domain.FavoriteRepository) *TracingFavoriteRepository {
	return &TracingFavoriteRepository{next: next}
}

func (r *TracingFavoriteRepository) Create(ctx context.Context, item *domain.FavoriteItem) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.Int("favorite.user_id", int(item.UserID)),
			attribute.Int("favorite.product_id", item.ProductID),
		),
	)
	defer span.End()

	if err := r.next.Create(ctx, item); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("favorite.id", int(item.ID)))
	return nil
}

func (r *TracingFavoriteRepository) FindByID(ctx context.Context, id uint) (*domain.FavoriteItem, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("favorite.id", int(id))),
	)
	defer span.End()

	item, err := r.next.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return item, nil
}

func (r *TracingFavoriteRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.FavoriteItem, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByUserID",
		trace.WithAttributes(attribute.Int("favorite.user_id", int(userID))),
	)
	defer span.End()

	items, err := r.next.FindByUserID(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(items)))
	return items, nil
}

func (r *TracingFavoriteRepository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.Int("favorite.id", int(id))),
	)
	defer span.End()

	if err := r.next.Delete(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
