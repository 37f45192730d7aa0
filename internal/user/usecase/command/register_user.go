package command

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/tair/storefront/internal/user/domain"
	"github.com/tair/storefront/pkg/apperr"
	"github.com/tair/storefront/pkg/auth"
)

// RegisterUserCommand represents the command to register a new user
type RegisterUserCommand struct {
	Name     string
	Email    string
	Password string
}

// RegisterUserHandler handles user registration command
type RegisterUserHandler struct {
	repo domain.UserRepository
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo}
}

// Handle executes the register user command
func (h *RegisterUserHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*domain.User, error) {
	cmd.Email = strings.ToLower(strings.TrimSpace(cmd.Email))

	if strings.TrimSpace(cmd.Name) == "" {
		return nil, apperr.Validation("name is required")
	}
	if cmd.Email == "" {
		return nil, apperr.Validation("email is required")
	}
	if _, err := mail.ParseAddress(cmd.Email); err != nil {
		return nil, apperr.Validation("invalid email")
	}
	if len(cmd.Password) < 6 {
		return nil, apperr.Validation("password must be at least 6 characters")
	}

	// Check if user already exists
	existing, err := h.repo.FindByEmail(ctx, cmd.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("user already exists")
	}

	hashedPassword, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:     strings.TrimSpace(cmd.Name),
		Email:    cmd.Email,
		Password: hashedPassword,
	}

	if err := h.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
