package models

import (
	"strings"
	"time"
)

// HTTPMethod is an HTTP verb stored alongside a documented endpoint
type HTTPMethod string

// HTTPMethod values
const (
	HTTPMethodGet     HTTPMethod = "GET"
	HTTPMethodPost    HTTPMethod = "POST"
	HTTPMethodPut     HTTPMethod = "PUT"
	HTTPMethodDelete  HTTPMethod = "DELETE"
	HTTPMethodPatch   HTTPMethod = "PATCH"
	HTTPMethodHead    HTTPMethod = "HEAD"
	HTTPMethodOptions HTTPMethod = "OPTIONS"
)

// IsValid reports whether m is a known HTTP method (case-sensitive, upper case)
func (m HTTPMethod) IsValid() bool {
	switch m {
	case HTTPMethodGet, HTTPMethodPost, HTTPMethodPut, HTTPMethodDelete,
		HTTPMethodPatch, HTTPMethodHead, HTTPMethodOptions:
		return true
	}
	return false
}

// ParseHTTPMethod normalizes s to an HTTPMethod
func ParseHTTPMethod(s string) (HTTPMethod, bool) {
	m := HTTPMethod(strings.ToUpper(strings.TrimSpace(s)))
	return m, m.IsValid()
}

// Documentation describes one public endpoint.
// Rows are seeded at migration time and never written through the API.
type Documentation struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Endpoint    string     `gorm:"type:text;not null" json:"endpoint"`
	Method      HTTPMethod `gorm:"type:text;not null" json:"method"`
	Description string     `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName overrides the default table name for GORM
func (Documentation) TableName() string {
	return "documentation_entries"
}

// DefaultDocumentation is the entry seeded for the greeting endpoint
func DefaultDocumentation() *Documentation {
	return &Documentation{
		Endpoint:    "/helloworld",
		Method:      HTTPMethodGet,
		Description: "Returns a simple 'Hello, World!' message.",
	}
}
