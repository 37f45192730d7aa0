package storefront

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// CartTotals is the order summary of the displayed cart
type CartTotals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// CartController mutates the shopper's cart and mirrors confirmed changes locally
type CartController struct {
	store    CartStore
	notifier Notifier

	mu    sync.Mutex
	lines []CartLine
}

// NewCartController creates a cart controller
func NewCartController(store CartStore, notifier Notifier) *CartController {
	return &CartController{store: store, notifier: orNop(notifier)}
}

// AddLine adds a product to the cart. Adding a product already in the cart
// creates another line.
func (c *CartController) AddLine(ctx context.Context, s Session, line NewCartLine) (*CartLine, error) {
	if err := s.require(); err != nil {
		c.notifier.Failure(ctx, "Please log in to add items to the cart", err)
		return nil, err
	}
	if line.Quantity == nil {
		one := 1
		line.Quantity = &one
	}
	if *line.Quantity < 1 {
		err := fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
		c.notifier.Failure(ctx, "Could not add to cart", err)
		return nil, err
	}
	if line.ProductID == 0 {
		err := fmt.Errorf("%w: product id is required", ErrValidation)
		c.notifier.Failure(ctx, "Could not add to cart", err)
		return nil, err
	}

	created, err := c.store.AddCartLine(ctx, s, line)
	if err != nil {
		c.notifier.Failure(ctx, "Could not add to cart", err)
		return nil, err
	}

	c.mu.Lock()
	c.lines = append(c.lines, *created)
	c.mu.Unlock()

	c.notifier.Success(ctx, fmt.Sprintf("%s added to cart", created.Title))
	return created, nil
}

// UpdateQuantity sets a line's quantity. Quantities below 1 are rejected
// without contacting the store. The local line takes the requested quantity.
func (c *CartController) UpdateQuantity(ctx context.Context, s Session, lineID uint, quantity int) error {
	if quantity < 1 {
		err := fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
		c.notifier.Failure(ctx, "Quantity must be at least 1", err)
		return err
	}
	if err := s.require(); err != nil {
		c.notifier.Failure(ctx, "Please log in to update the cart", err)
		return err
	}

	if _, err := c.store.UpdateCartLine(ctx, s, lineID, quantity); err != nil {
		c.notifier.Failure(ctx, "Could not update quantity", err)
		return err
	}

	c.mu.Lock()
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			c.lines[i].Quantity = quantity
			break
		}
	}
	c.mu.Unlock()

	c.notifier.Success(ctx, "Quantity updated")
	return nil
}

// RemoveLine deletes a line from the cart
func (c *CartController) RemoveLine(ctx context.Context, s Session, lineID uint) error {
	if err := s.require(); err != nil {
		c.notifier.Failure(ctx, "Please log in to update the cart", err)
		return err
	}

	if err := c.store.RemoveCartLine(ctx, s, lineID); err != nil {
		c.notifier.Failure(ctx, "Could not remove item", err)
		return err
	}

	c.mu.Lock()
	for i, line := range c.lines {
		if line.ID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	c.notifier.Success(ctx, "Item removed from cart")
	return nil
}

// ListLines loads the shopper's cart and replaces the local copy
func (c *CartController) ListLines(ctx context.Context, s Session) ([]CartLine, error) {
	if err := s.require(); err != nil {
		return nil, err
	}

	lines, err := c.store.ListCart(ctx, s)
	if err != nil {
		c.notifier.Failure(ctx, "Could not load the cart", err)
		return nil, err
	}

	c.mu.Lock()
	c.lines = append([]CartLine(nil), lines...)
	c.mu.Unlock()

	return lines, nil
}

// Lines returns a copy of the local cart
func (c *CartController) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]CartLine(nil), c.lines...)
}

// Line returns the local line with the given id
func (c *CartController) Line(lineID uint) (CartLine, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, line := range c.lines {
		if line.ID == lineID {
			return line, true
		}
	}
	return CartLine{}, false
}

// Totals recomputes the summary from the local lines. Shipping and tax are zero.
func (c *CartController) Totals() CartTotals {
	c.mu.Lock()
	defer c.mu.Unlock()

	subtotal := decimal.Zero
	for _, line := range c.lines {
		subtotal = subtotal.Add(line.LineTotal())
	}
	return CartTotals{
		Subtotal: subtotal,
		Shipping: decimal.Zero,
		Tax:      decimal.Zero,
		Total:    subtotal,
	}
}
