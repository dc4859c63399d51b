package models

import "time"

// HealthStatusSingletonID is the fixed primary key of the only health status row
const HealthStatusSingletonID uint = 1

// HealthStatus holds the operator-maintained status message of the API
type HealthStatus struct {
	// ID is HealthStatusSingletonID for rows written by the API
	ID uint `gorm:"primaryKey;autoIncrement:false" json:"id"`

	StatusMessage string `gorm:"type:text;not null" json:"statusMessage"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the default table name for GORM
func (HealthStatus) TableName() string {
	return "health_statuses"
}
