package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/testutil"
	"github.com/tair/storefront/internal/user/domain"
)

func TestGormUserRepository(t *testing.T) {
	repo := NewTracingUserRepository(NewGormUserRepository(testutil.NewSQLiteDB(t, &domain.User{})))
	ctx := context.Background()

	user := &domain.User{Name: "Ada", Email: "ada@example.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", byID.Email)

	byEmail, err := repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID.ProfileImage = "avatar.png"
	require.NoError(t, repo.Update(ctx, byID))

	reloaded, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "avatar.png", reloaded.ProfileImage)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.FindByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	assert.Error(t, repo.Create(ctx, &domain.User{Name: "Dup", Email: "ada@example.com", Password: "x"}))
}
