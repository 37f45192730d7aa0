package cart

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/storefront/internal/cart/domain"
	"github.com/tair/storefront/internal/cart/repository"
	"github.com/tair/storefront/internal/cart/usecase/command"
	"github.com/tair/storefront/internal/cart/usecase/query"
)

// ProvideCartRepository provides the traced cart repository
func ProvideCartRepository(db *gorm.DB) domain.CartRepository {
	return repository.NewTracingCartRepository(repository.NewGormCartRepository(db))
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCartRepository,
)

var CommandHandlerSet = wire.NewSet(
	command.NewAddItemHandler,
	command.NewUpdateQuantityHandler,
	command.NewRemoveItemHandler,
	command.NewClearCartHandler,
)

var QueryHandlerSet = wire.NewSet(
	query.NewListItemsHandler,
)

// ProviderSet wires the cart module up to its use-case handlers
var ProviderSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)
