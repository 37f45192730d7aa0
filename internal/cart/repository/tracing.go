package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/storefront/internal/cart/domain"
)

var tracer = otel.Tracer("cart-repository")

// TracingCartRepository wraps a CartRepository with tracing
type TracingCartRepository struct {
	next domain.CartRepository
}

// NewTracingCartRepository creates a new repository with tracing
func NewTracingCartRepository(next domain.CartRepository) *TracingCartRepository {
	return &TracingCartRepository{next: next}
}

func (r *TracingCartRepository) Create(ctx context.Context, item *domain.CartItem) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.Int("cart.user_id", int(item.UserID)),
			attribute.Int("cart.product_id", item.ProductID),
			attribute.Int("cart.quantity", item.Quantity),
			attribute.String("cart.price", item.Price.String()),
		),
	)
	defer span.End()

	if err := r.next.Create(ctx, item); err != nil {
		recordError(span, err)
		return err
	}

	span.SetAttributes(attribute.Int("cart.item_id", int(item.ID)))
	return nil
}

func (r *TracingCartRepository) FindByID(ctx context.Context, id uint) (*domain.CartItem, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("cart.item_id", int(id))),
	)
	defer span.End()

	item, err := r.next.FindByID(ctx, id)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return item, nil
}

func (r *TracingCartRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.CartItem, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByUserID",
		trace.WithAttributes(attribute.Int("cart.user_id", int(userID))),
	)
	defer span.End()

	items, err := r.next.FindByUserID(ctx, userID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(items)))
	return items, nil
}

func (r *TracingCartRepository) UpdateQuantity(ctx context.Context, id uint, quantity int) error {
	ctx, span := tracer.Start(ctx, "repository.UpdateQuantity",
		trace.WithAttributes(
			attribute.Int("cart.item_id", int(id)),
			attribute.Int("cart.quantity", quantity),
		),
	)
	defer span.End()

	if err := r.next.UpdateQuantity(ctx, id, quantity); err != nil {
		recordError(span, err)
		return err
	}
	return nil
}

func (r *TracingCartRepository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.Int("cart.item_id", int(id))),
	)
	defer span.End()

	if err := r.next.Delete(ctx, id); err != nil {
		recordError(span, err)
		return err
	}
	return nil
}

func (r *TracingCartRepository) DeleteByUserID(ctx context.Context, userID uint) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.DeleteByUserID",
		trace.WithAttributes(attribute.Int("cart.user_id", int(userID))),
	)
	defer span.End()

	n, err := r.next.DeleteByUserID(ctx, userID)
	if err != nil {
		recordError(span, err)
		return 0, err
	}

	span.SetAttributes(attribute.Int64("result.deleted", n))
	return n, nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
