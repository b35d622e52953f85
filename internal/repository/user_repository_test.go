package repository

import (
	"context"
	"testing"
	"time"

	"marketsquare/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewUserRepository(pool, zerolog.Nop())

	user := &model.User{
		ID:        uuid.New(),
		Name:      "Ada",
		Email:     "ada@example.com",
		Password:  "secret",
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, user))

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, user.Email, byID.Email)

	byEmail, err := repo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)

	missing, err := repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewUserRepository(pool, zerolog.Nop())

	first := &model.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", Password: "secret", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, first))

	second := &model.User{ID: uuid.New(), Name: "Imposter", Email: "ada@example.com", Password: "secret", CreatedAt: time.Now()}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, model.ErrEmailAlreadyRegistered)
}
