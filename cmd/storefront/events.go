package main

import (
	"context"

	cartcommand "github.com/tair/storefront/internal/cart/usecase/command"
	ordercommand "github.com/tair/storefront/internal/order/usecase/command"
	"github.com/tair/storefront/kafka"
	"github.com/tair/storefront/pkg/logger"
)

type orderPublisher interface {
	ordercommand.EventPublisher
	Close() error
}

type orderConsumer interface {
	RegisterHandler(eventType string, handler kafka.EventHandler)
	Start(ctx context.Context) error
	Close() error
}

type cartClearer interface {
	Handle(ctx context.Context, cmd cartcommand.ClearCartCommand) (int64, error)
}

// orderEvents pairs the order.placed publisher with the consumer that clears carts
type orderEvents struct {
	publisher orderPublisher
	consumer  orderConsumer
}

// connectOrderEvents returns nil unless both sides are available. Checkout only
// skips the inline cart clear when it has a publisher, so a publisher is never
// handed out without the consumer that acts on its events.
func connectOrderEvents(dialConsumer func() (orderConsumer, error), dialPublisher func() (orderPublisher, error)) *orderEvents {
	consumer, err := dialConsumer()
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Kafka consumer unavailable, clearing carts inline")
		return nil
	}

	publisher, err := dialPublisher()
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Kafka publisher unavailable, clearing carts inline")
		consumer.Close()
		return nil
	}

	return &orderEvents{publisher: publisher, consumer: consumer}
}

// Publisher returns an untyped nil when events are disabled
func (e *orderEvents) Publisher() ordercommand.EventPublisher {
	if e == nil {
		return nil
	}
	return e.publisher
}

// Start registers the cart clearing handler and begins consuming until ctx ends
func (e *orderEvents) Start(ctx context.Context, clearCart cartClearer) error {
	if e == nil {
		return nil
	}
	e.consumer.RegisterHandler(kafka.EventTypeOrderPlaced, clearCartOnOrder(clearCart))
	return e.consumer.Start(ctx)
}

func (e *orderEvents) Close() {
	if e == nil {
		return
	}
	if err := e.consumer.Close(); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to close order consumer")
	}
	if err := e.publisher.Close(); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to close order publisher")
	}
}

func clearCartOnOrder(clearCart cartClearer) kafka.EventHandler {
	return func(ctx context.Context, event kafka.OrderPlacedEvent) error {
		removed, err := clearCart.Handle(ctx, cartcommand.ClearCartCommand{UserID: event.UserID})
		if err != nil {
			return err
		}
		logger.Info(ctx).
			Str("order_id", event.OrderID).
			Int64("removed_lines", removed).
			Msg("Cart cleared after order")
		return nil
	}
}
