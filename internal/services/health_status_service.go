package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/helloworld/api-backend/internal/models"
	"github.com/helloworld/api-backend/internal/repositories"
	"go.uber.org/zap"
)

// HealthNotConfiguredMessage is reported when no health status has been stored
const HealthNotConfiguredMessage = "Health check module not configured."

// HealthStatusService handles the business logic for the health status entry
type HealthStatusService struct {
	store    HealthStatusStore
	errorLog ErrorStore
	logger   *zap.Logger
}

// NewHealthStatusService creates a new health status service instance.
// errorStore is consulted when the status itself cannot be read.
func NewHealthStatusService(store HealthStatusStore, errorStore ErrorStore, logger *zap.Logger) *HealthStatusService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthStatusService{
		store:    store,
		errorLog: errorStore,
		logger:   logger,
	}
}

// CreateHealthStatusRequest contains the initial status message
type CreateHealthStatusRequest struct {
	StatusMessage string `json:"statusMessage" form:"statusMessage" binding:"required" example:"ok"`
	// AdminID identifies the operator; it is recorded in logs only
	AdminID *int `json:"adminId,omitempty" form:"adminId" example:"1"`
}

// CreateHealthStatusResponse confirms the creation
type CreateHealthStatusResponse struct {
	Confirmation string `json:"confirmation" example:"Health status entry created: ok"`
}

// HealthStatusResponse reports the current status
type HealthStatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// UpdateHealthStatusRequest contains the new status message
type UpdateHealthStatusRequest struct {
	StatusMessage string `json:"statusMessage" form:"statusMessage" binding:"required" example:"All systems functional"`
}

// UpdateHealthStatusResponse confirms the update
type UpdateHealthStatusResponse struct {
	ConfirmationMessage string `json:"confirmationMessage" example:"Health status updated to: All systems functional"`
}

// DeleteHealthStatusRequest selects the entry to delete; ID defaults to the singleton key
type DeleteHealthStatusRequest struct {
	ID *uint `json:"id,omitempty" form:"id" example:"1"`
}

// DeleteHealthStatusResponse confirms the deletion
type DeleteHealthStatusResponse struct {
	ConfirmationMessage string `json:"confirmation_message" example:"Health status with id 1 has been deleted"`
}

// Create stores the health status entry
func (s *HealthStatusService) Create(ctx context.Context, req *CreateHealthStatusRequest) (*CreateHealthStatusResponse, error) {
	status, err := s.store.Upsert(ctx, req.StatusMessage)
	if err != nil {
		return nil, fmt.Errorf("failed to create health status: %w", err)
	}

	fields := []zap.Field{zap.String("status", status.StatusMessage)}
	if req.AdminID != nil {
		fields = append(fields, zap.Int("admin_id", *req.AdminID))
	}
	s.logger.Info("health status created", fields...)

	return &CreateHealthStatusResponse{
		Confirmation: fmt.Sprintf("Health status entry created: %s", status.StatusMessage),
	}, nil
}

// Get returns the current status. It never fails: when the status cannot be
// read, the first error log message (or the read error itself) is reported.
func (s *HealthStatusService) Get(ctx context.Context) *HealthStatusResponse {
	status, err := s.store.Get(ctx)
	if err == nil {
		return &HealthStatusResponse{Status: status.StatusMessage}
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return &HealthStatusResponse{Status: HealthNotConfiguredMessage}
	}

	s.logger.Warn("health status read failed, falling back to error log", zap.Error(err))

	if s.errorLog != nil {
		record, ferr := s.errorLog.First(ctx)
		if ferr == nil {
			return &HealthStatusResponse{Status: record.ErrorMessage}
		}
		if !errors.Is(ferr, repositories.ErrNotFound) {
			s.logger.Warn("error log fallback failed", zap.Error(ferr))
		}
	}

	return &HealthStatusResponse{Status: fmt.Sprintf("Error Occurred: %s", err)}
}

// Update replaces the status message, creating the entry if absent
func (s *HealthStatusService) Update(ctx context.Context, req *UpdateHealthStatusRequest) (*UpdateHealthStatusResponse, error) {
	status, err := s.store.Upsert(ctx, req.StatusMessage)
	if err != nil {
		return nil, fmt.Errorf("failed to update health status: %w", err)
	}

	return &UpdateHealthStatusResponse{
		ConfirmationMessage: fmt.Sprintf("Health status updated to: %s", status.StatusMessage),
	}, nil
}

// Delete removes the health status entry. Deleting a missing entry succeeds.
func (s *HealthStatusService) Delete(ctx context.Context, req *DeleteHealthStatusRequest) (*DeleteHealthStatusResponse, error) {
	id := models.HealthStatusSingletonID
	if req != nil && req.ID != nil {
		id = *req.ID
	}

	if _, err := s.store.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete health status: %w", err)
	}

	return &DeleteHealthStatusResponse{
		ConfirmationMessage: fmt.Sprintf("Health status with id %d has been deleted", id),
	}, nil
}
