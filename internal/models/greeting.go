package models

import "time"

// GreetingSingletonID is the fixed primary key of the only greeting row
const GreetingSingletonID uint = 1

// DefaultGreeting is returned when no greeting has been stored
const DefaultGreeting = "Hello, World!"

// Greeting holds the configurable "Hello, World!" message.
// The table holds at most one row, keyed by GreetingSingletonID.
type Greeting struct {
	// ID is always GreetingSingletonID
	ID uint `gorm:"primaryKey;autoIncrement:false" json:"id"`

	// Message is the text served by the greeting endpoints
	Message string `gorm:"type:text;not null" json:"message"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the default table name for GORM
func (Greeting) TableName() string {
	return "greetings"
}

// ResponseType is the representation requested when a greeting is created
type ResponseType string

// ResponseType values
const (
	ResponseTypeText ResponseType = "TEXT"
	ResponseTypeJSON ResponseType = "JSON"
)

// IsValid reports whether rt is a known response type
func (rt ResponseType) IsValid() bool {
	switch rt {
	case ResponseTypeText, ResponseTypeJSON:
		return true
	}
	return false
}
