package repositories

import (
	"context"
	"testing"

	"github.com/hafizianr/go-catalog-admin/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	// Legacy imports carry plaintext passwords; the repository must store
	// them verbatim.
	user := &models.User{Username: "admin", Password: "plain-secret"}
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	byName, err := repo.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, "plain-secret", byName.Password)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "admin", byID.Username)
}

func TestUserRepositoryFindMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user, err := repo.FindByUsername(ctx, "nobody")
	assert.NoError(t, err)
	assert.Nil(t, user)

	user, err = repo.FindByID(ctx, 123)
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepositoryUpdatePassword(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Username: "admin", Password: "plain-secret"}
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.UpdatePassword(ctx, user.ID, "$2a$10$hash"))

	updated, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "$2a$10$hash", updated.Password)
}
