package repositories

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/helloworld/api-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGreetingRepository_GetEmpty tests reading before anything is stored
func TestGreetingRepository_GetEmpty(t *testing.T) {
	repo := NewGreetingRepository(setupTestDB(t))

	_, err := repo.Get(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

// TestGreetingRepository_UpsertAndGet tests the create-then-read round trip
func TestGreetingRepository_UpsertAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewGreetingRepository(setupTestDB(t))

	stored, err := repo.Upsert(ctx, "Hello, Gophers!")
	require.NoError(t, err)
	assert.Equal(t, "Hello, Gophers!", stored.Message)

	found, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Hello, Gophers!", found.Message)
}

// TestGreetingRepository_UpsertTwiceKeepsOneRow tests that updates replace the singleton
func TestGreetingRepository_UpsertTwiceKeepsOneRow(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGreetingRepository(db)

	_, err := repo.Upsert(ctx, "first")
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, "second")
	require.NoError(t, err)

	assert.Equal(t, int64(1), countRows(t, db, &models.Greeting{}))

	found, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", found.Message)
}

// TestGreetingRepository_ConcurrentUpserts tests that racing writers never create a second row
func TestGreetingRepository_ConcurrentUpserts(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGreetingRepository(db)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Upsert(ctx, "racing")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), countRows(t, db, &models.Greeting{}))
}

// TestGreetingRepository_DeleteAll tests removing the greeting
func TestGreetingRepository_DeleteAll(t *testing.T) {
	ctx := context.Background()
	repo := NewGreetingRepository(setupTestDB(t))

	// Deleting when nothing exists is not an error
	deleted, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	_, err = repo.Upsert(ctx, "bye")
	require.NoError(t, err)

	deleted, err = repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repo.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}
