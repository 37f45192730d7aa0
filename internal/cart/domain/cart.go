package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrCartItemNotFound = errors.New("cart item not found")

// CartItem is one product/quantity line of a user's cart. Title, price and
// image are a snapshot taken when the line was added.
type CartItem struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	UserID    uint            `json:"user_id" gorm:"not null;index"`
	ProductID int             `json:"product_id" gorm:"not null"`
	Title     string          `json:"title" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:numeric(12,2);not null"`
	Image     string          `json:"image" gorm:"not null"`
	Quantity  int             `json:"quantity" gorm:"not null;default:1"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName specifies the table name
func (CartItem) TableName() string {
	return "cart_items"
}

// LineTotal returns price times quantity
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Subtotal sums the line totals of items
func Subtotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// CartRepository defines the contract for cart data access
type CartRepository interface {
	Create(ctx context.Context, item *CartItem) error
	FindByID(ctx context.Context, id uint) (*CartItem, error)
	FindByUserID(ctx context.Context, userID uint) ([]CartItem, error)
	UpdateQuantity(ctx context.Context, id uint, quantity int) error
	Delete(ctx context.Context, id uint) error
	DeleteByUserID(ctx context.Context, userID uint) (int64, error)
}
