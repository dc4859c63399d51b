package models

import "time"

// PingResponse represents the response structure for the liveness endpoint
type PingResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Database  string    `json:"database"`
}

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error string `json:"error" example:"no error found with ID 5: not found"`
}
