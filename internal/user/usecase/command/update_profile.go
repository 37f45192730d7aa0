package command

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/tair/storefront/internal/user/domain"
	"github.com/tair/storefront/pkg/apperr"
)

// UpdateProfileCommand represents a partial profile update; nil fields are left unchanged
type UpdateProfileCommand struct {
	UserID       uint
	Name         *string
	Email        *string
	ProfileImage *string
}

// UpdateProfileHandler handles profile update command
type UpdateProfileHandler struct {
	repo domain.UserRepository
}

// NewUpdateProfileHandler creates a new update profile handler
func NewUpdateProfileHandler(repo domain.UserRepository) *UpdateProfileHandler {
	return &UpdateProfileHandler{repo: repo}
}

// Handle executes the update profile command. Empty strings count as absent.
func (h *UpdateProfileHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) (*domain.User, error) {
	if cmd.UserID == 0 {
		return nil, apperr.Validation("user id is required")
	}

	user, err := h.repo.FindByID(ctx, cmd.UserID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, apperr.NotFound("user %d", cmd.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if name := trimmed(cmd.Name); name != "" {
		user.Name = name
	}

	if email := strings.ToLower(trimmed(cmd.Email)); email != "" && email != user.Email {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, apperr.Validation("invalid email")
		}
		other, err := h.repo.FindByEmail(ctx, email)
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if other != nil {
			return nil, apperr.Conflict("email already registered")
		}
		user.Email = email
	}

	if image := trimmed(cmd.ProfileImage); image != "" {
		user.ProfileImage = image
	}

	if err := h.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
