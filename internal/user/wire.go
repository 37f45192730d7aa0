package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/storefront/internal/user/domain"
	"github.com/tair/storefront/internal/user/repository"
	"github.com/tair/storefront/internal/user/usecase/command"
	"github.com/tair/storefront/internal/user/usecase/query"
	"github.com/tair/storefront/pkg/auth"
)

// ProvideUserRepository provides the traced user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewTracingUserRepository(repository.NewGormUserRepository(db))
}

// ProvideLoginUserHandler binds the JWT manager as token issuer
func ProvideLoginUserHandler(repo domain.UserRepository, jwt *auth.JWTManager) *command.LoginUserHandler {
	return command.NewLoginUserHandler(repo, jwt)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
)

var CommandHandlerSet = wire.NewSet(
	command.NewRegisterUserHandler,
	ProvideLoginUserHandler,
	command.NewUpdateProfileHandler,
)

var QueryHandlerSet = wire.NewSet(
	query.NewGetUserHandler,
)

// ProviderSet wires the user module up to its use-case handlers
var ProviderSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)
