// Package repositories implements persistence for the API's resources on top
// of GORM. Lookups that find nothing return an error wrapping ErrNotFound so
// that handlers can translate it into an HTTP 404 response.
package repositories

import "errors"

// ErrNotFound is returned when the requested record does not exist
var ErrNotFound = errors.New("not found")
