package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/helloworld/api-backend/internal/models"
	"gorm.io/gorm"
)

// DocumentationRepository reads the seeded documentation entries
type DocumentationRepository struct {
	db *gorm.DB
}

// NewDocumentationRepository creates a new documentation repository instance
func NewDocumentationRepository(db *gorm.DB) *DocumentationRepository {
	return &DocumentationRepository{db: db}
}

// First retrieves the first documentation entry
// Returns an error wrapping ErrNotFound if nothing has been seeded
func (r *DocumentationRepository) First(ctx context.Context) (*models.Documentation, error) {
	var doc models.Documentation
	if err := r.db.WithContext(ctx).Order("id ASC").First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("documentation entry %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get documentation entry: %w", err)
	}

	return &doc, nil
}
