package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/helloworld/api-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HealthStatusRepository handles database operations for the health status singleton
type HealthStatusRepository struct {
	db *gorm.DB
}

// NewHealthStatusRepository creates a new health status repository instance
func NewHealthStatusRepository(db *gorm.DB) *HealthStatusRepository {
	return &HealthStatusRepository{db: db}
}

// Get retrieves the current health status
// Returns an error wrapping ErrNotFound if no status has been stored
func (r *HealthStatusRepository) Get(ctx context.Context) (*models.HealthStatus, error) {
	var status models.HealthStatus
	if err := r.db.WithContext(ctx).First(&status, models.HealthStatusSingletonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("health status %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get health status: %w", err)
	}

	return &status, nil
}

// Upsert stores statusMessage in the singleton row, creating it when absent
func (r *HealthStatusRepository) Upsert(ctx context.Context, statusMessage string) (*models.HealthStatus, error) {
	status := &models.HealthStatus{
		ID:            models.HealthStatusSingletonID,
		StatusMessage: statusMessage,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status_message", "updated_at"}),
	}).Create(status).Error
	if err != nil {
		return nil, fmt.Errorf("failed to store health status: %w", err)
	}

	return status, nil
}

// Delete removes the health status row with the given ID
// Returns the number of rows deleted; deleting a missing row is not an error
func (r *HealthStatusRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.HealthStatus{}, id)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete health status: %w", result.Error)
	}

	return result.RowsAffected, nil
}
