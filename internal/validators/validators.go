package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/helloworld/api-backend/internal/models"
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// ValidateResponseType validates a greeting response type
func ValidateResponseType(rt models.ResponseType, fieldName string) error {
	if rt == "" {
		return NewValidationError(fieldName, "response type is required")
	}
	if !rt.IsValid() {
		return NewValidationError(fieldName, fmt.Sprintf("invalid response type %q (allowed: %s, %s)", rt, models.ResponseTypeText, models.ResponseTypeJSON))
	}
	return nil
}

// ValidateHTTPMethod validates an HTTP method name
func ValidateHTTPMethod(method string, fieldName string) error {
	if method == "" {
		return NewValidationError(fieldName, "HTTP method is required")
	}
	if _, ok := models.ParseHTTPMethod(method); !ok {
		return NewValidationError(fieldName, fmt.Sprintf("invalid HTTP method %q", method))
	}
	return nil
}

// ParseID parses a positive numeric record ID, e.g. from a path parameter
func ParseID(raw string, fieldName string) (uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, NewValidationError(fieldName, "ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, NewValidationError(fieldName, fmt.Sprintf("invalid ID %q (expected a positive integer)", raw))
	}

	return uint(id), nil
}

// RegisterBindingValidations adds the "response_type" struct tag to gin's
// validator. Validation errors name fields by their JSON name.
func RegisterBindingValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("response_type", func(fl validator.FieldLevel) bool {
		return models.ResponseType(fl.Field().String()).IsValid()
	}); err != nil {
		return fmt.Errorf("failed to register response_type validation: %w", err)
	}

	return nil
}

// DescribeBindingError turns validator errors into a short readable message
func DescribeBindingError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", fe.Field()))
		case "response_type":
			parts = append(parts, fmt.Sprintf("%s must be one of %s, %s", fe.Field(), models.ResponseTypeText, models.ResponseTypeJSON))
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}

	return strings.Join(parts, "; ")
}
