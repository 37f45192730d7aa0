package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tair/storefront/internal/cart/domain"
)

type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.CartItem{})
}

func (r *GormCartRepository) Create(ctx context.Context, item *domain.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *GormCartRepository) FindByID(ctx context.Context, id uint) (*domain.CartItem, error) {
	var item domain.CartItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormCartRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.CartItem, error) {
	items := []domain.CartItem{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *GormCartRepository) UpdateQuantity(ctx context.Context, id uint, quantity int) error {
	result := r.db.WithContext(ctx).
		Model(&domain.CartItem{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

func (r *GormCartRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.CartItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

func (r *GormCartRepository) DeleteByUserID(ctx context.Context, userID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.CartItem{})
	return result.RowsAffected, result.Error
}
