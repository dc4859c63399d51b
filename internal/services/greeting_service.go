package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/helloworld/api-backend/internal/models"
	"github.com/helloworld/api-backend/internal/repositories"
	"github.com/helloworld/api-backend/internal/validators"
)

// GreetingDeletedMessage confirms that the greeting was removed
const GreetingDeletedMessage = "Hello, World! message deleted successfully"

// GreetingService handles the business logic for the greeting message
type GreetingService struct {
	store GreetingStore
}

// NewGreetingService creates a new greeting service instance
func NewGreetingService(store GreetingStore) *GreetingService {
	return &GreetingService{store: store}
}

// CreateGreetingRequest contains the data needed to create the greeting
type CreateGreetingRequest struct {
	Message      string              `json:"message" form:"message" binding:"required" example:"Hello, Gophers!"`
	ResponseType models.ResponseType `json:"responseType" form:"responseType" binding:"required,response_type" example:"JSON"`
}

// CreateGreetingResponse contains the stored greeting
type CreateGreetingResponse struct {
	Message      string              `json:"message" example:"Hello, Gophers!"`
	ResponseType models.ResponseType `json:"responseType" example:"JSON"`
}

// UpdateGreetingRequest contains the new greeting message
type UpdateGreetingRequest struct {
	Message string `json:"message" form:"message" binding:"required" example:"Hello, Universe!"`
}

// GreetingResponse carries a greeting or a confirmation message
type GreetingResponse struct {
	Message string `json:"message" example:"Hello, World!"`
}

// Create stores a new greeting message, replacing any existing one
func (s *GreetingService) Create(ctx context.Context, req *CreateGreetingRequest) (*CreateGreetingResponse, error) {
	if err := validators.ValidateResponseType(req.ResponseType, "responseType"); err != nil {
		return nil, err
	}

	greeting, err := s.store.Upsert(ctx, req.Message)
	if err != nil {
		return nil, fmt.Errorf("failed to create greeting: %w", err)
	}

	return &CreateGreetingResponse{
		Message:      greeting.Message,
		ResponseType: req.ResponseType,
	}, nil
}

// Get returns the stored greeting, or DefaultGreeting when none exists
func (s *GreetingService) Get(ctx context.Context) (*GreetingResponse, error) {
	greeting, err := s.store.Get(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return &GreetingResponse{Message: models.DefaultGreeting}, nil
		}
		return nil, fmt.Errorf("failed to read greeting: %w", err)
	}

	return &GreetingResponse{Message: greeting.Message}, nil
}

// Update replaces the greeting message, creating it if absent
func (s *GreetingService) Update(ctx context.Context, req *UpdateGreetingRequest) (*GreetingResponse, error) {
	greeting, err := s.store.Upsert(ctx, req.Message)
	if err != nil {
		return nil, fmt.Errorf("failed to update greeting: %w", err)
	}

	return &GreetingResponse{Message: greeting.Message}, nil
}

// Delete removes the greeting; subsequent reads return DefaultGreeting
func (s *GreetingService) Delete(ctx context.Context) (*GreetingResponse, error) {
	if _, err := s.store.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete greeting: %w", err)
	}

	return &GreetingResponse{Message: GreetingDeletedMessage}, nil
}
