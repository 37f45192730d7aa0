package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrFavoriteNotFound = errors.New("favorite item not found")

// FavoriteItem is a saved product snapshot owned by one user
type FavoriteItem struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	UserID      uint            `json:"user_id" gorm:"not null;index"`
	ProductID   int             `json:"product_id" gorm:"not null"`
	Title       string          `json:"title" gorm:"not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric(12,2);not null"`
	Image       string          `json:"image" gorm:"not null"`
	Description string          `json:"description" gorm:"not null"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TableName specifies the table name
func (FavoriteItem) TableName() string {
	return "favorite_items"
}

// FavoriteRepository defines the contract for favorites data access
type FavoriteRepository interface {
	Create(ctx context.Context, item *FavoriteItem) error
	FindByID(ctx context.Context, id uint) (*FavoriteItem, error)
	FindByUserID(ctx context.Context, userID uint) ([]FavoriteItem, error)
	Delete(ctx context.Context, id uint) error
}
