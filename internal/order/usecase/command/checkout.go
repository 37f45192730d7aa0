package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	cartdomain "github.com/tair/storefront/internal/cart/domain"
	cartcommand "github.com/tair/storefront/internal/cart/usecase/command"
	"github.com/tair/storefront/internal/order/domain"
	"github.com/tair/storefront/kafka"
	"github.com/tair/storefront/pkg/apperr"
	"github.com/tair/storefront/pkg/logger"
)

// CartReader loads the lines being checked out
type CartReader interface {
	FindByUserID(ctx context.Context, userID uint) ([]cartdomain.CartItem, error)
}

// CartClearer empties a cart once the order is recorded
type CartClearer interface {
	Handle(ctx context.Context, cmd cartcommand.ClearCartCommand) (int64, error)
}

// EventPublisher announces placed orders
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error
}

// CheckoutCommand represents the command to check out the user's cart
type CheckoutCommand struct {
	UserID        uint
	PaymentMethod string
	Currency      string
}

// CheckoutHandler handles checkout command
type CheckoutHandler struct {
	repo      domain.OrderRepository
	cart      CartReader
	clearer   CartClearer
	publisher EventPublisher
}

// NewCheckoutHandler creates a new checkout handler. With a nil publisher the
// cart is cleared inline instead of by the order.placed consumer.
func NewCheckoutHandler(repo domain.OrderRepository, cart CartReader, clearer CartClearer, publisher EventPublisher) *CheckoutHandler {
	return &CheckoutHandler{
		repo:      repo,
		cart:      cart,
		clearer:   clearer,
		publisher: publisher,
	}
}

// Handle executes the checkout command
func (h *CheckoutHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*domain.Order, error) {
	if cmd.UserID == 0 {
		return nil, fmt.Errorf("%w: user_id is required", apperr.ErrUnauthorized)
	}

	if cmd.Currency == "" {
		cmd.Currency = "USD"
	}
	if cmd.PaymentMethod == "" {
		cmd.PaymentMethod = "credit_card"
	}

	lines, err := h.cart.FindByUserID(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(lines) == 0 {
		return nil, apperr.Validation("cart is empty")
	}

	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, domain.OrderItem{
			ProductID: line.ProductID,
			Title:     line.Title,
			Price:     line.Price,
			Image:     line.Image,
			Quantity:  line.Quantity,
		})
	}

	// Generate unique IDs
	order := &domain.Order{
		OrderID:       fmt.Sprintf("ORD-%s", strings.ToUpper(uuid.New().String()[:8])),
		UserID:        cmd.UserID,
		Amount:        cartdomain.Subtotal(lines),
		Currency:      strings.ToUpper(cmd.Currency),
		Status:        domain.StatusCompleted,
		PaymentMethod: cmd.PaymentMethod,
		TransactionID: fmt.Sprintf("TXN-%s", uuid.New().String()[:12]),
		Items:         items,
	}

	if err := h.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if h.publisher != nil {
		err := h.publisher.PublishOrderPlaced(ctx, kafka.OrderPlacedEvent{
			OrderID:       order.OrderID,
			UserID:        order.UserID,
			Amount:        order.Amount,
			Currency:      order.Currency,
			PaymentMethod: order.PaymentMethod,
			ItemCount:     len(order.Items),
		})
		if err == nil {
			return order, nil
		}
		logger.Warn(ctx).Err(err).Str("order_id", order.OrderID).Msg("Publishing order.placed failed, clearing cart inline")
	}

	if _, err := h.clearer.Handle(ctx, cartcommand.ClearCartCommand{UserID: cmd.UserID}); err != nil {
		// the order stands; a stale cart is recoverable by the shopper
		logger.Error(ctx).Err(err).Str("order_id", order.OrderID).Msg("Failed to clear cart after checkout")
	}

	return order, nil
}
