package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tair/storefront/internal/favorite/domain"
)

type GormFavoriteRepository struct {
	db *gorm.DB
}

func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

func (r *GormFavoriteRepository) Create(ctx context.Context, item *domain.FavoriteItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *GormFavoriteRepository) FindByID(ctx context.Context, id uint) (*domain.FavoriteItem, error) {
	var item domain.FavoriteItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrFavoriteNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormFavoriteRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.FavoriteItem, error) {
	items := []domain.FavoriteItem{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *GormFavoriteRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.FavoriteItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrFavoriteNotFound
	}
	return nil
}
