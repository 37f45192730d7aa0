package favorite

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/storefront/internal/favorite/domain"
	"github.com/tair/storefront/internal/favorite/repository"
	"github.com/tair/storefront/internal/favorite/usecase/command"
	"github.com/tair/storefront/internal/favorite/usecase/query"
)

// ProvideFavoriteRepository provides the traced favorite repository
func ProvideFavoriteRepository(db *gorm.DB) domain.FavoriteRepository {
	return repository.NewTracingFavoriteRepository(repository.NewGormFavoriteRepository(db))
}

// ProviderSet wires the favorite module up to its use-case handlers
var ProviderSet = wire.NewSet(
	ProvideFavoriteRepository,
	command.NewAddFavoriteHandler,
	command.NewRemoveFavoriteHandler,
	query.NewListFavoritesHandler,
)
