package app

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	carthttp "github.com/tair/storefront/internal/cart/delivery/http"
	cartdomain "github.com/tair/storefront/internal/cart/domain"
	cartcommand "github.com/tair/storefront/internal/cart/usecase/command"
	cartquery "github.com/tair/storefront/internal/cart/usecase/query"
	"github.com/tair/storefront/internal/catalog"
	cataloghttp "github.com/tair/storefront/internal/catalog/delivery/http"
	catalogquery "github.com/tair/storefront/internal/catalog/usecase/query"
	favoritehttp "github.com/tair/storefront/internal/favorite/delivery/http"
	favoritecommand "github.com/tair/storefront/internal/favorite/usecase/command"
	favoritequery "github.com/tair/storefront/internal/favorite/usecase/query"
	orderhttp "github.com/tair/storefront/internal/order/delivery/http"
	ordercommand "github.com/tair/storefront/internal/order/usecase/command"
	orderquery "github.com/tair/storefront/internal/order/usecase/query"
	userhttp "github.com/tair/storefront/internal/user/delivery/http"
	usercommand "github.com/tair/storefront/internal/user/usecase/command"
	userquery "github.com/tair/storefront/internal/user/usecase/query"
	"github.com/tair/storefront/pkg/auth"
	"github.com/tair/storefront/pkg/config"
	"github.com/tair/storefront/pkg/middleware"
)

// Application holds the HTTP handlers of every module plus the use cases
// driven by background consumers
type Application struct {
	Catalog  *cataloghttp.CatalogHandler
	Cart     *carthttp.CartHandler
	Favorite *favoritehttp.FavoriteHandler
	User     *userhttp.UserHandler
	Order    *orderhttp.OrderHandler

	ClearCart *cartcommand.ClearCartHandler
}

// RegisterRoutes registers the routes of every module
func (a *Application) RegisterRoutes(router *mux.Router) {
	a.Catalog.RegisterRoutes(router)
	a.Cart.RegisterRoutes(router)
	a.Favorite.RegisterRoutes(router)
	a.User.RegisterRoutes(router)
	a.Order.RegisterRoutes(router)
}

// ProvideJWTManager builds the token manager from configuration
func ProvideJWTManager(cfg config.Config) *auth.JWTManager {
	return auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
}

// ProvideUpstreamConfig extracts the catalog upstream settings
func ProvideUpstreamConfig(cfg config.Config) catalog.UpstreamConfig {
	return catalog.UpstreamConfig{
		BaseURL:  cfg.CatalogUpstreamURL,
		Timeout:  cfg.CatalogTimeout,
		CacheTTL: cfg.CatalogCacheTTL,
	}
}

// ProvideCartReader exposes the cart repository to checkout
func ProvideCartReader(repo cartdomain.CartRepository) ordercommand.CartReader {
	return repo
}

// ProvideCartClearer exposes the clear-cart use case to checkout
func ProvideCartClearer(h *cartcommand.ClearCartHandler) ordercommand.CartClearer {
	return h
}

// ProvideCatalogHTTPHandler builds the catalog handler with its own metrics
func ProvideCatalogHTTPHandler(
	list *catalogquery.ListProductsHandler,
	count *catalogquery.CountProductsHandler,
	get *catalogquery.GetProductHandler,
	categories *catalogquery.ListCategoriesHandler,
	reg prometheus.Registerer,
) *cataloghttp.CatalogHandler {
	return cataloghttp.NewCatalogHandler(list, count, get, categories, middleware.NewMetrics("catalog", reg))
}

// ProvideCartHTTPHandler builds the cart handler with its own metrics
func ProvideCartHTTPHandler(
	add *cartcommand.AddItemHandler,
	update *cartcommand.UpdateQuantityHandler,
	remove *cartcommand.RemoveItemHandler,
	list *cartquery.ListItemsHandler,
	jwt *auth.JWTManager,
	reg prometheus.Registerer,
) *carthttp.CartHandler {
	return carthttp.NewCartHandler(add, update, remove, list, jwt, middleware.NewMetrics("cart", reg))
}

// ProvideFavoriteHTTPHandler builds the favorite handler with its own metrics
func ProvideFavoriteHTTPHandler(
	add *favoritecommand.AddFavoriteHandler,
	remove *favoritecommand.RemoveFavoriteHandler,
	list *favoritequery.ListFavoritesHandler,
	jwt *auth.JWTManager,
	reg prometheus.Registerer,
) *favoritehttp.FavoriteHandler {
	return favoritehttp.NewFavoriteHandler(add, remove, list, jwt, middleware.NewMetrics("favorite", reg))
}

// ProvideUserHTTPHandler builds the user handler with its own metrics
func ProvideUserHTTPHandler(
	register *usercommand.RegisterUserHandler,
	login *usercommand.LoginUserHandler,
	update *usercommand.UpdateProfileHandler,
	get *userquery.GetUserHandler,
	jwt *auth.JWTManager,
	reg prometheus.Registerer,
) *userhttp.UserHandler {
	return userhttp.NewUserHandler(register, login, update, get, jwt, middleware.NewMetrics("user", reg))
}

// ProvideOrderHTTPHandler builds the order handler with its own metrics
func ProvideOrderHTTPHandler(
	checkout *ordercommand.CheckoutHandler,
	list *orderquery.ListOrdersHandler,
	get *orderquery.GetOrderHandler,
	jwt *auth.JWTManager,
	reg prometheus.Registerer,
) *orderhttp.OrderHandler {
	return orderhttp.NewOrderHandler(checkout, list, get, jwt, middleware.NewMetrics("order", reg))
}
