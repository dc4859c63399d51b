package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/helloworld/api-backend/internal/models"
	"github.com/helloworld/api-backend/internal/repositories"
	"github.com/helloworld/api-backend/internal/validators"
	"go.uber.org/zap"
)

// ErrorHandler writes the response for the last error a handler attached
// with c.Error. Handlers return right after attaching the error.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		c.Next()

		ginErr := c.Errors.Last()
		if ginErr == nil {
			return
		}

		status, message := determineErrorStatus(ginErr)

		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.Error(ginErr.Err),
		}
		if status >= http.StatusInternalServerError {
			logger.Error("request failed", fields...)
		} else {
			logger.Warn("request rejected", fields...)
		}

		if c.Writer.Written() {
			return
		}
		c.AbortWithStatusJSON(status, models.ErrorResponse{Error: message})
	}
}

// determineErrorStatus maps an attached error to an HTTP status and message
func determineErrorStatus(ginErr *gin.Error) (int, string) {
	err := ginErr.Err

	if errors.Is(err, repositories.ErrNotFound) {
		return http.StatusNotFound, err.Error()
	}

	if ginErr.IsType(gin.ErrorTypeBind) {
		return http.StatusBadRequest, validators.DescribeBindingError(err)
	}

	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, verr.Error()
	}

	return http.StatusInternalServerError, err.Error()
}
