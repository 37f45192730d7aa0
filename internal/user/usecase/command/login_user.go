package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tair/storefront/internal/user/domain"
	"github.com/tair/storefront/pkg/apperr"
	"github.com/tair/storefront/pkg/auth"
)

// LoginUserCommand represents the command to login a user
type LoginUserCommand struct {
	Email    string
	Password string
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// TokenIssuer signs access tokens
type TokenIssuer interface {
	GenerateToken(userID uint, email string) (string, error)
}

// LoginUserHandler handles user login command
type LoginUserHandler struct {
	repo   domain.UserRepository
	tokens TokenIssuer
}

// NewLoginUserHandler creates a new login user handler
func NewLoginUserHandler(repo domain.UserRepository, tokens TokenIssuer) *LoginUserHandler {
	return &LoginUserHandler{repo: repo, tokens: tokens}
}

// Handle executes the login user command
func (h *LoginUserHandler) Handle(ctx context.Context, cmd LoginUserCommand) (*LoginResponse, error) {
	if cmd.Email == "" {
		return nil, apperr.Validation("email is required")
	}
	if cmd.Password == "" {
		return nil, apperr.Validation("password is required")
	}

	user, err := h.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(cmd.Email)))
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("%w: invalid credentials", apperr.ErrUnauthorized)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !auth.CheckPassword(user.Password, cmd.Password) {
		return nil, fmt.Errorf("%w: invalid credentials", apperr.ErrUnauthorized)
	}

	token, err := h.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		Token: token,
		User:  user,
	}, nil
}
