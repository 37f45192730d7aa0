package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartcommand "github.com/tair/storefront/internal/cart/usecase/command"
	"github.com/tair/storefront/kafka"
)

type publisherStub struct {
	closed bool
}

func (p *publisherStub) PublishOrderPlaced(context.Context, kafka.OrderPlacedEvent) error {
	return nil
}

func (p *publisherStub) Close() error {
	p.closed = true
	return nil
}

type consumerStub struct {
	handlers map[string]kafka.EventHandler
	startErr error
	started  bool
	closed   bool
}

func (c *consumerStub) RegisterHandler(eventType string, handler kafka.EventHandler) {
	if c.handlers == nil {
		c.handlers = make(map[string]kafka.EventHandler)
	}
	c.handlers[eventType] = handler
}

func (c *consumerStub) Start(context.Context) error {
	c.started = true
	return c.startErr
}

func (c *consumerStub) Close() error {
	c.closed = true
	return nil
}

type clearerStub struct {
	users []uint
}

func (c *clearerStub) Handle(_ context.Context, cmd cartcommand.ClearCartCommand) (int64, error) {
	c.users = append(c.users, cmd.UserID)
	return 2, nil
}

func TestConnectOrderEvents_ConsumerFailureDisablesPublisher(t *testing.T) {
	dialed := false
	events := connectOrderEvents(
		func() (orderConsumer, error) { return nil, errors.New("no brokers") },
		func() (orderPublisher, error) {
			dialed = true
			return &publisherStub{}, nil
		},
	)

	assert.Nil(t, events)
	assert.False(t, dialed)
	// an untyped nil makes checkout clear the cart inline
	assert.True(t, events.Publisher() == nil)
	assert.NoError(t, events.Start(context.Background(), &clearerStub{}))
	events.Close()
}

func TestConnectOrderEvents_PublisherFailureClosesConsumer(t *testing.T) {
	consumer := &consumerStub{}
	events := connectOrderEvents(
		func() (orderConsumer, error) { return consumer, nil },
		func() (orderPublisher, error) { return nil, errors.New("no brokers") },
	)

	assert.Nil(t, events)
	assert.True(t, consumer.closed)
	assert.True(t, events.Publisher() == nil)
}

func TestConnectOrderEvents_ClearsCartOnOrderPlaced(t *testing.T) {
	consumer := &consumerStub{}
	publisher := &publisherStub{}
	events := connectOrderEvents(
		func() (orderConsumer, error) { return consumer, nil },
		func() (orderPublisher, error) { return publisher, nil },
	)
	require.NotNil(t, events)
	assert.Same(t, publisher, events.Publisher())

	clearer := &clearerStub{}
	require.NoError(t, events.Start(context.Background(), clearer))
	assert.True(t, consumer.started)

	handler, ok := consumer.handlers[kafka.EventTypeOrderPlaced]
	require.True(t, ok)
	require.NoError(t, handler(context.Background(), kafka.OrderPlacedEvent{OrderID: "ORD-1", UserID: 9}))
	assert.Equal(t, []uint{9}, clearer.users)

	events.Close()
	assert.True(t, consumer.closed)
	assert.True(t, publisher.closed)
}

func TestOrderEvents_StartFailureIsReported(t *testing.T) {
	consumer := &consumerStub{startErr: errors.New("group closed")}
	events := connectOrderEvents(
		func() (orderConsumer, error) { return consumer, nil },
		func() (orderPublisher, error) { return &publisherStub{}, nil },
	)

	assert.Error(t, events.Start(context.Background(), &clearerStub{}))
}
