package validators

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/helloworld/api-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidateResponseType tests response type validation
func TestValidateResponseType(t *testing.T) {
	tests := []struct {
		name    string
		rt      models.ResponseType
		wantErr bool
	}{
		{"text", models.ResponseTypeText, false},
		{"json", models.ResponseTypeJSON, false},
		{"lowercase", "json", true},
		{"unknown", "XML", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResponseType(tt.rt, "responseType")
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateResponseType(%q) error = %v, wantErr %v", tt.rt, err, tt.wantErr)
			}
		})
	}
}

// TestValidateHTTPMethod tests HTTP method validation
func TestValidateHTTPMethod(t *testing.T) {
	tests := []struct {
		method  string
		wantErr bool
	}{
		{"GET", false},
		{"delete", false},
		{"CONNECT", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			err := ValidateHTTPMethod(tt.method, "method")
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

// TestParseID tests path ID parsing
func TestParseID(t *testing.T) {
	tests := []struct {
		raw     string
		want    uint
		wantErr bool
	}{
		{"1", 1, false},
		{" 42 ", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"99999999999", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseID(tt.raw, "id")
			if tt.wantErr {
				require.Error(t, err)
				var verr *ValidationError
				assert.True(t, errors.As(err, &verr))
				assert.Equal(t, "id", verr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestValidationError_Error tests error formatting
func TestValidationError_Error(t *testing.T) {
	err := NewValidationError("message", "is required")
	assert.Equal(t, "message: is required", err.Error())
}

type bindingSample struct {
	ResponseType string `binding:"required,response_type"`
}

// TestRegisterBindingValidations tests the custom gin binding tags
func TestRegisterBindingValidations(t *testing.T) {
	require.NoError(t, RegisterBindingValidations())

	assert.NoError(t, binding.Validator.ValidateStruct(&bindingSample{ResponseType: "JSON"}))

	err := binding.Validator.ValidateStruct(&bindingSample{ResponseType: "XML"})
	require.Error(t, err)
	assert.Equal(t, "ResponseType must be one of TEXT, JSON", DescribeBindingError(err))

	err = binding.Validator.ValidateStruct(&bindingSample{})
	require.Error(t, err)
	assert.Equal(t, "ResponseType is required", DescribeBindingError(err))
}
