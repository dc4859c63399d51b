package middleware

import (
	"fmt"
	"net/http"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/helloworld/api-backend/internal/models"
	"go.uber.org/zap"
)

// Recovery logs panics with their stack and answers 500 with an error body
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return ginzap.CustomRecoveryWithZap(logger, true, func(c *gin.Context, err any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: fmt.Sprint(err),
		})
	})
}
