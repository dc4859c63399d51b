package models

import "time"

// ErrorRecord is an entry in the error log
type ErrorRecord struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Code is the error code, typically an HTTP status such as 404 or 500
	Code int `gorm:"not null" json:"code"`

	// ErrorMessage describes what went wrong
	ErrorMessage string `gorm:"type:text;not null" json:"errorMessage"`

	// Resolution is empty until someone records how the error was resolved
	Resolution string `gorm:"type:text;not null;default:''" json:"resolution"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the default table name for GORM
func (ErrorRecord) TableName() string {
	return "error_records"
}
