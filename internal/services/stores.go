package services

import (
	"context"

	"github.com/helloworld/api-backend/internal/models"
)

// GreetingStore persists the greeting singleton
type GreetingStore interface {
	Get(ctx context.Context) (*models.Greeting, error)
	Upsert(ctx context.Context, message string) (*models.Greeting, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// ErrorStore persists error log records
type ErrorStore interface {
	Create(ctx context.Context, code int, message string) (*models.ErrorRecord, error)
	FindByID(ctx context.Context, id uint) (*models.ErrorRecord, error)
	First(ctx context.Context) (*models.ErrorRecord, error)
	ListAll(ctx context.Context) ([]*models.ErrorRecord, error)
	Update(ctx context.Context, id uint, code int, message string) (*models.ErrorRecord, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

// HealthStatusStore persists the health status singleton
type HealthStatusStore interface {
	Get(ctx context.Context) (*models.HealthStatus, error)
	Upsert(ctx context.Context, statusMessage string) (*models.HealthStatus, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

// DocumentationStore reads documentation entries
type DocumentationStore interface {
	First(ctx context.Context) (*models.Documentation, error)
}
