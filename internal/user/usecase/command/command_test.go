package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/testutil"
	"github.com/tair/storefront/internal/user/domain"
	"github.com/tair/storefront/internal/user/repository"
	"github.com/tair/storefront/pkg/apperr"
	"github.com/tair/storefront/pkg/auth"
)

func newRepo(t *testing.T) domain.UserRepository {
	return repository.NewGormUserRepository(testutil.NewSQLiteDB(t, &domain.User{}))
}

func strPtr(s string) *string { return &s }

func register(t *testing.T, repo domain.UserRepository, name, email string) *domain.User {
	t.Helper()
	user, err := NewRegisterUserHandler(repo).Handle(context.Background(), RegisterUserCommand{
		Name:     name,
		Email:    email,
		Password: "secret123",
	})
	require.NoError(t, err)
	return user
}

func TestRegisterUser(t *testing.T) {
	repo := newRepo(t)

	user := register(t, repo, "Ada", " Ada@Example.com ")
	assert.NotZero(t, user.ID)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEqual(t, "secret123", user.Password)
	assert.True(t, auth.CheckPassword(user.Password, "secret123"))
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	repo := newRepo(t)
	register(t, repo, "Ada", "ada@example.com")

	_, err := NewRegisterUserHandler(repo).Handle(context.Background(), RegisterUserCommand{
		Name:     "Other",
		Email:    "ADA@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestRegisterUser_Validation(t *testing.T) {
	h := NewRegisterUserHandler(newRepo(t))

	tests := []struct {
		name string
		cmd  RegisterUserCommand
	}{
		{"missing name", RegisterUserCommand{Email: "a@b.io", Password: "secret123"}},
		{"missing email", RegisterUserCommand{Name: "A", Password: "secret123"}},
		{"malformed email", RegisterUserCommand{Name: "A", Email: "nope", Password: "secret123"}},
		{"short password", RegisterUserCommand{Name: "A", Email: "a@b.io", Password: "123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Handle(context.Background(), tt.cmd)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}
}

func TestLoginUser(t *testing.T) {
	repo := newRepo(t)
	user := register(t, repo, "Ada", "ada@example.com")
	jwt := auth.NewJWTManager("test-secret", time.Hour)
	h := NewLoginUserHandler(repo, jwt)

	resp, err := h.Handle(context.Background(), LoginUserCommand{Email: "ada@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.User.ID)

	claims, err := jwt.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	_, err = h.Handle(context.Background(), LoginUserCommand{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	_, err = h.Handle(context.Background(), LoginUserCommand{Email: "ghost@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	repo := newRepo(t)
	user := register(t, repo, "Ada", "ada@example.com")
	h := NewUpdateProfileHandler(repo)

	updated, err := h.Handle(context.Background(), UpdateProfileCommand{
		UserID:       user.ID,
		ProfileImage: strPtr("https://img.example.com/ada.png"),
		Name:         strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", updated.Name)
	assert.Equal(t, "ada@example.com", updated.Email)
	assert.Equal(t, "https://img.example.com/ada.png", updated.ProfileImage)

	updated, err = h.Handle(context.Background(), UpdateProfileCommand{UserID: user.ID, Name: strPtr("Ada L.")})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", updated.Name)
	assert.Equal(t, "https://img.example.com/ada.png", updated.ProfileImage)
}

func TestUpdateProfile_EmailCollision(t *testing.T) {
	repo := newRepo(t)
	ada := register(t, repo, "Ada", "ada@example.com")
	register(t, repo, "Bob", "bob@example.com")
	h := NewUpdateProfileHandler(repo)

	_, err := h.Handle(context.Background(), UpdateProfileCommand{UserID: ada.ID, Email: strPtr("bob@example.com")})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	// keeping the own address is not a collision
	_, err = h.Handle(context.Background(), UpdateProfileCommand{UserID: ada.ID, Email: strPtr("ada@example.com")})
	assert.NoError(t, err)
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	_, err := NewUpdateProfileHandler(newRepo(t)).Handle(context.Background(), UpdateProfileCommand{
		UserID: 42,
		Name:   strPtr("Ghost"),
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
