package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/helloworld/api-backend/internal/crypto"
	"github.com/helloworld/api-backend/internal/models"
)

// AdminEmailKey is the gin context key holding the authenticated admin email
const AdminEmailKey = "admin_email"

// AdminAuth validates admin bearer tokens signed with jwtSecret.
// An empty secret disables the check. When email is set the token
// subject must match it.
func AdminAuth(jwtSecret, email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if jwtSecret == "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorizedResponse(c, "admin authentication required")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorizedResponse(c, "invalid authorization header format, expected: Bearer <token>")
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			unauthorizedResponse(c, "token is required in Authorization header")
			return
		}

		claims, err := crypto.VerifyAdminJWT(tokenString, jwtSecret)
		if err != nil {
			unauthorizedResponse(c, "invalid or expired token: "+err.Error())
			return
		}

		if email != "" && !strings.EqualFold(claims.Email, email) {
			unauthorizedResponse(c, "token was not issued for the configured admin")
			return
		}

		c.Set(AdminEmailKey, claims.Email)
		c.Next()
	}
}

// unauthorizedResponse is a helper to return 401 responses
func unauthorizedResponse(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: message})
}
