package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/helloworld/api-backend/internal/models"
	"github.com/helloworld/api-backend/internal/repositories"
)

// ErrorDeletedMessage confirms that an error record was removed
const ErrorDeletedMessage = "Error message deleted successfully"

// ErrorService handles the business logic for the error log
type ErrorService struct {
	store ErrorStore
}

// NewErrorService creates a new error service instance
func NewErrorService(store ErrorStore) *ErrorService {
	return &ErrorService{store: store}
}

// CreateErrorRequest contains the data needed to record an error.
// Code is required; 0 is a valid code.
type CreateErrorRequest struct {
	Code    *int   `json:"code" form:"code" binding:"required" example:"404"`
	Message string `json:"message" form:"message" binding:"required" example:"Not Found"`
}

// CreateErrorResponse contains the recorded error with its ID
type CreateErrorResponse struct {
	ID      uint   `json:"id" example:"1"`
	Code    int    `json:"code" example:"404"`
	Message string `json:"message" example:"Not Found"`
}

// UpdateErrorRequest contains the new code and message of an error
type UpdateErrorRequest struct {
	Code    *int   `json:"code" form:"code" binding:"required" example:"500"`
	Message string `json:"message" form:"message" binding:"required" example:"Internal Server Error"`
}

// ErrorDetail describes one error record
type ErrorDetail struct {
	ID           uint   `json:"id" example:"1"`
	ErrorMessage string `json:"errorMessage" example:"Not Found"`
	Resolution   string `json:"resolution" example:""`
	Code         int    `json:"code" example:"404"`
}

// ErrorListResponse contains every error record
type ErrorListResponse struct {
	Errors []*ErrorDetail `json:"errors"`
}

// DeleteErrorResponse confirms a deletion
type DeleteErrorResponse struct {
	Message string `json:"message" example:"Error message deleted successfully"`
}

// CreateError records a new error with an empty resolution
func (s *ErrorService) CreateError(ctx context.Context, req *CreateErrorRequest) (*CreateErrorResponse, error) {
	record, err := s.store.Create(ctx, *req.Code, req.Message)
	if err != nil {
		return nil, fmt.Errorf("failed to create error: %w", err)
	}

	return &CreateErrorResponse{
		ID:      record.ID,
		Code:    record.Code,
		Message: record.ErrorMessage,
	}, nil
}

// GetError returns a single error record
func (s *ErrorService) GetError(ctx context.Context, id uint) (*ErrorDetail, error) {
	record, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("no error found with ID %d: %w", id, repositories.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get error: %w", err)
	}

	return toErrorDetail(record), nil
}

// ListErrors returns every error record
func (s *ErrorService) ListErrors(ctx context.Context) (*ErrorListResponse, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list errors: %w", err)
	}

	details := make([]*ErrorDetail, len(records))
	for i, record := range records {
		details[i] = toErrorDetail(record)
	}

	return &ErrorListResponse{Errors: details}, nil
}

// UpdateError changes the code and message of an existing error; the resolution is kept
func (s *ErrorService) UpdateError(ctx context.Context, id uint, req *UpdateErrorRequest) (*ErrorDetail, error) {
	record, err := s.store.Update(ctx, id, *req.Code, req.Message)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("error with ID %d does not exist: %w", id, repositories.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update error: %w", err)
	}

	return toErrorDetail(record), nil
}

// DeleteError removes an error record. Deleting an unknown ID succeeds.
func (s *ErrorService) DeleteError(ctx context.Context, id uint) (*DeleteErrorResponse, error) {
	if _, err := s.store.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete error: %w", err)
	}

	return &DeleteErrorResponse{Message: ErrorDeletedMessage}, nil
}

func toErrorDetail(record *models.ErrorRecord) *ErrorDetail {
	return &ErrorDetail{
		ID:           record.ID,
		ErrorMessage: record.ErrorMessage,
		Resolution:   record.Resolution,
		Code:         record.Code,
	}
}
