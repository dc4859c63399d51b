package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/helloworld/api-backend/internal/models"
	"gorm.io/gorm"
)

// ErrorRepository handles database operations for the error log
type ErrorRepository struct {
	db *gorm.DB
}

// NewErrorRepository creates a new error repository instance
func NewErrorRepository(db *gorm.DB) *ErrorRepository {
	return &ErrorRepository{db: db}
}

// Create inserts a new error record
// The resolution always starts empty
func (r *ErrorRepository) Create(ctx context.Context, code int, message string) (*models.ErrorRecord, error) {
	record := &models.ErrorRecord{
		Code:         code,
		ErrorMessage: message,
		Resolution:   "",
	}

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, fmt.Errorf("failed to create error record: %w", err)
	}

	return record, nil
}

// FindByID retrieves an error record by its ID
// Returns an error wrapping ErrNotFound if the record doesn't exist
func (r *ErrorRepository) FindByID(ctx context.Context, id uint) (*models.ErrorRecord, error) {
	var record models.ErrorRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("error record %d %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find error record: %w", err)
	}

	return &record, nil
}

// First retrieves the oldest error record
// Returns an error wrapping ErrNotFound if the log is empty
func (r *ErrorRepository) First(ctx context.Context) (*models.ErrorRecord, error) {
	var record models.ErrorRecord
	if err := r.db.WithContext(ctx).Order("id ASC").First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("error log is empty: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find first error record: %w", err)
	}

	return &record, nil
}

// ListAll retrieves all error records ordered by ID
func (r *ErrorRepository) ListAll(ctx context.Context) ([]*models.ErrorRecord, error) {
	var records []*models.ErrorRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list error records: %w", err)
	}

	return records, nil
}

// Update changes the code and message of an existing record, leaving the resolution untouched
// Returns an error wrapping ErrNotFound if the record doesn't exist
func (r *ErrorRepository) Update(ctx context.Context, id uint, code int, message string) (*models.ErrorRecord, error) {
	result := r.db.WithContext(ctx).Model(&models.ErrorRecord{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"code":          code,
			"error_message": message,
		})

	if result.Error != nil {
		return nil, fmt.Errorf("failed to update error record: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("error record %d %w", id, ErrNotFound)
	}

	return r.FindByID(ctx, id)
}

// Delete removes an error record by ID
// Returns the number of rows deleted; deleting a missing record is not an error
func (r *ErrorRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.ErrorRecord{}, id)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete error record: %w", result.Error)
	}

	return result.RowsAffected, nil
}
