package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/helloworld/api-backend/internal/models"
	"github.com/helloworld/api-backend/internal/repositories"
)

// DocumentationService serves the seeded API documentation
type DocumentationService struct {
	store DocumentationStore
}

// NewDocumentationService creates a new documentation service instance
func NewDocumentationService(store DocumentationStore) *DocumentationService {
	return &DocumentationService{store: store}
}

// DocumentationResponse describes the documented endpoint
type DocumentationResponse struct {
	ID          uint              `json:"id" example:"1"`
	Endpoint    string            `json:"endpoint" example:"/helloworld"`
	Method      models.HTTPMethod `json:"method" example:"GET"`
	Description string            `json:"description" example:"Returns a simple 'Hello, World!' message."`
}

// Get returns the documentation entry
func (s *DocumentationService) Get(ctx context.Context) (*DocumentationResponse, error) {
	doc, err := s.store.First(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("no documentation entry found: %w", repositories.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get documentation: %w", err)
	}

	return &DocumentationResponse{
		ID:          doc.ID,
		Endpoint:    doc.Endpoint,
		Method:      doc.Method,
		Description: doc.Description,
	}, nil
}
