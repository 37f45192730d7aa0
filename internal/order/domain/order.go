package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrOrderNotFound = errors.New("order not found")

// Order statuses
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Order is a simulated checkout of a user's cart
type Order struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	OrderID       string          `json:"order_id" gorm:"not null;uniqueIndex"`
	UserID        uint            `json:"user_id" gorm:"not null;index"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:numeric(12,2);not null"`
	Currency      string          `json:"currency" gorm:"not null;default:'USD'"`
	Status        string          `json:"status" gorm:"not null;default:'processing'"`
	PaymentMethod string          `json:"payment_method"`
	TransactionID string          `json:"transaction_id"`
	Items         []OrderItem     `json:"items" gorm:"foreignKey:OrderRef"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// OrderItem is the snapshot of one cart line at checkout time
type OrderItem struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	OrderRef  uint            `json:"-" gorm:"not null;index"`
	ProductID int             `json:"product_id" gorm:"not null"`
	Title     string          `json:"title" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:numeric(12,2);not null"`
	Image     string          `json:"image" gorm:"not null"`
	Quantity  int             `json:"quantity" gorm:"not null"`
}

// TableName specifies the table name
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderRepository defines the contract for order data access
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	FindByOrderID(ctx context.Context, orderID string) (*Order, error)
	FindByUserID(ctx context.Context, userID uint) ([]Order, error)
}
