package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/helloworld/api-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GreetingRepository handles database operations for the greeting singleton
type GreetingRepository struct {
	db *gorm.DB
}

// NewGreetingRepository creates a new greeting repository instance
func NewGreetingRepository(db *gorm.DB) *GreetingRepository {
	return &GreetingRepository{db: db}
}

// Get retrieves the stored greeting
// Returns an error wrapping ErrNotFound if no greeting has been stored
func (r *GreetingRepository) Get(ctx context.Context) (*models.Greeting, error) {
	var greeting models.Greeting
	if err := r.db.WithContext(ctx).First(&greeting, models.GreetingSingletonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("greeting %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get greeting: %w", err)
	}

	return &greeting, nil
}

// Upsert stores message in the singleton row, creating it when absent.
// A single INSERT ... ON CONFLICT statement keeps concurrent writers from
// producing more than one row.
func (r *GreetingRepository) Upsert(ctx context.Context, message string) (*models.Greeting, error) {
	greeting := &models.Greeting{
		ID:      models.GreetingSingletonID,
		Message: message,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"message", "updated_at"}),
	}).Create(greeting).Error
	if err != nil {
		return nil, fmt.Errorf("failed to store greeting: %w", err)
	}

	return greeting, nil
}

// DeleteAll removes every greeting row
// Returns the number of rows deleted; zero is not an error
func (r *GreetingRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Greeting{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete greeting: %w", result.Error)
	}

	return result.RowsAffected, nil
}
