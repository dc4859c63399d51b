package repositories

import (
	"context"
	"testing"

	"github.com/helloworld/api-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrorRepository_CreateAndFind tests creating and reading an error record
func TestErrorRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewErrorRepository(setupTestDB(t))

	created, err := repo.Create(ctx, 404, "Not Found")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 404, found.Code)
	assert.Equal(t, "Not Found", found.ErrorMessage)
	assert.Equal(t, "", found.Resolution)
}

// TestErrorRepository_FindByID_NotFound tests reading a missing record
func TestErrorRepository_FindByID_NotFound(t *testing.T) {
	repo := NewErrorRepository(setupTestDB(t))

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestErrorRepository_ListAll tests listing N records
func TestErrorRepository_ListAll(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewErrorRepository(db)

	inputs := []struct {
		code    int
		message string
	}{
		{400, "Bad Request"},
		{404, "Not Found"},
		{500, "boom"},
	}
	for _, in := range inputs {
		_, err := repo.Create(ctx, in.code, in.message)
		require.NoError(t, err)
	}

	records, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, len(inputs))
	for i, in := range inputs {
		assert.Equal(t, in.code, records[i].Code)
		assert.Equal(t, in.message, records[i].ErrorMessage)
		assert.Equal(t, "", records[i].Resolution)
	}

	assert.Equal(t, int64(len(inputs)), countRows(t, db, &models.ErrorRecord{}))
}

// TestErrorRepository_ListAll_Empty tests listing an empty log
func TestErrorRepository_ListAll_Empty(t *testing.T) {
	repo := NewErrorRepository(setupTestDB(t))

	records, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

// TestErrorRepository_Update tests that updates keep the resolution
func TestErrorRepository_Update(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewErrorRepository(db)

	created, err := repo.Create(ctx, 500, "boom")
	require.NoError(t, err)

	// Resolution is only ever set out of band
	require.NoError(t, db.Exec("UPDATE error_records SET resolution = ? WHERE id = ?", "restarted", created.ID).Error)

	updated, err := repo.Update(ctx, created.ID, 503, "unavailable")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 503, updated.Code)
	assert.Equal(t, "unavailable", updated.ErrorMessage)
	assert.Equal(t, "restarted", updated.Resolution)
}

// TestErrorRepository_Update_NotFound tests updating a missing record
func TestErrorRepository_Update_NotFound(t *testing.T) {
	repo := NewErrorRepository(setupTestDB(t))

	_, err := repo.Update(context.Background(), 7, 500, "boom")
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestErrorRepository_Delete tests deletion, including of a missing record
func TestErrorRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewErrorRepository(setupTestDB(t))

	created, err := repo.Create(ctx, 500, "boom")
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

// TestErrorRepository_First tests reading the oldest record
func TestErrorRepository_First(t *testing.T) {
	ctx := context.Background()
	repo := NewErrorRepository(setupTestDB(t))

	_, err := repo.First(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Create(ctx, 500, "first failure")
	require.NoError(t, err)
	_, err = repo.Create(ctx, 502, "second failure")
	require.NoError(t, err)

	first, err := repo.First(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first failure", first.ErrorMessage)
}
