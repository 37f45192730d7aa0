package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/storefront/internal/user/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// GetUserQuery represents the query to get a user by ID
type GetUserQuery struct {
	ID uint
}

// GetUserHandler handles get user query
type GetUserHandler struct {
	repo domain.UserRepository
}

// NewGetUserHandler creates a new get user handler
func NewGetUserHandler(repo domain.UserRepository) *GetUserHandler {
	return &GetUserHandler{repo: repo}
}

// Handle executes the get user query
func (h *GetUserHandler) Handle(ctx context.Context, query GetUserQuery) (*domain.User, error) {
	if query.ID == 0 {
		return nil, apperr.Validation("invalid user id")
	}

	user, err := h.repo.FindByID(ctx, query.ID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, apperr.NotFound("user %d", query.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}
