//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/tair/storefront/internal/cart"
	"github.com/tair/storefront/internal/catalog"
	catalogrepo "github.com/tair/storefront/internal/catalog/repository"
	"github.com/tair/storefront/internal/favorite"
	"github.com/tair/storefront/internal/order"
	ordercommand "github.com/tair/storefront/internal/order/usecase/command"
	"github.com/tair/storefront/internal/user"
	"github.com/tair/storefront/pkg/config"
)

var handlerSet = wire.NewSet(
	ProvideCatalogHTTPHandler,
	ProvideCartHTTPHandler,
	ProvideFavoriteHTTPHandler,
	ProvideUserHTTPHandler,
	ProvideOrderHTTPHandler,
)

// InitializeApplication wires every module. cache and publisher may be nil
// when Redis or Kafka are not configured.
func InitializeApplication(
	cfg config.Config,
	db *gorm.DB,
	cache catalogrepo.Cache,
	publisher ordercommand.EventPublisher,
	reg prometheus.Registerer,
) (*Application, error) {
	wire.Build(
		ProvideJWTManager,
		ProvideUpstreamConfig,
		ProvideCartReader,
		ProvideCartClearer,
		catalog.ProviderSet,
		cart.ProviderSet,
		favorite.ProviderSet,
		user.ProviderSet,
		order.ProviderSet,
		handlerSet,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
