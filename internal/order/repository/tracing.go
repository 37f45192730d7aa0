package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/storefront/internal/order/domain"
)

var tracer = otel.Tracer("order-repository")

// TracingOrderRepository wraps an OrderRepository with tracing
type TracingOrderRepository struct {
	next domain.OrderRepository
}

// NewTracingOrderRepository creates a new repository with tracing
func NewTracingOrderRepository(next domain.OrderRepository) *TracingOrderRepository {
	return &TracingOrderRepository{next: next}
}

// Create with tracing
func (r *TracingOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("order.id", order.OrderID),
			attribute.Int("order.items", len(order.Items)),
		),
	)
	defer span.End()

	if err := r.next.Create(ctx, order); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// FindByOrderID with tracing
func (r *TracingOrderRepository) FindByOrderID(ctx context.Context, orderID string) (*domain.Order, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByOrderID",
		trace.WithAttributes(attribute.String("order.id", orderID)),
	)
	defer span.End()

	order, err := r.next.FindByOrderID(ctx, orderID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return order, nil
}

// FindByUserID with tracing
func (r *TracingOrderRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Order, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByUserID",
		trace.WithAttributes(attribute.Int("user.id", int(userID))),
	)
	defer span.End()

	orders, err := r.next.FindByUserID(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("orders.count", len(orders)))
	return orders, nil
}
