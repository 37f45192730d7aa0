package order

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/storefront/internal/order/domain"
	"github.com/tair/storefront/internal/order/repository"
	"github.com/tair/storefront/internal/order/usecase/command"
	"github.com/tair/storefront/internal/order/usecase/query"
)

// ProvideOrderRepository provides the traced order repository
func ProvideOrderRepository(db *gorm.DB) domain.OrderRepository {
	return repository.NewTracingOrderRepository(repository.NewGormOrderRepository(db))
}

// ProviderSet wires the order module up to its use-case handlers. The
// checkout handler's cart ports and publisher are bound by the caller.
var ProviderSet = wire.NewSet(
	ProvideOrderRepository,
	command.NewCheckoutHandler,
	query.NewListOrdersHandler,
	query.NewGetOrderHandler,
)
