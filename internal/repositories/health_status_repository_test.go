package repositories

import (
	"context"
	"testing"

	"github.com/helloworld/api-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHealthStatusRepository_Lifecycle tests create, read, update and delete
func TestHealthStatusRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewHealthStatusRepository(setupTestDB(t))

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Upsert(ctx, "ok")
	require.NoError(t, err)

	status, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.HealthStatusSingletonID, status.ID)
	assert.Equal(t, "ok", status.StatusMessage)

	_, err = repo.Upsert(ctx, "degraded")
	require.NoError(t, err)

	status, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "degraded", status.StatusMessage)

	deleted, err := repo.Delete(ctx, models.HealthStatusSingletonID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repo.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestHealthStatusRepository_DeleteMissing tests deleting an unknown id
func TestHealthStatusRepository_DeleteMissing(t *testing.T) {
	repo := NewHealthStatusRepository(setupTestDB(t))

	deleted, err := repo.Delete(context.Background(), 99)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
