package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/helloworld/api-backend/internal/database"
	"github.com/helloworld/api-backend/internal/logging"
	"github.com/helloworld/api-backend/internal/models"
	"gorm.io/gorm"
)

const pingTimeout = 2 * time.Second

// PingHandler handles the /ping endpoint for liveness checks
type PingHandler struct {
	db *gorm.DB
}

// NewPingHandler creates a new ping handler
func NewPingHandler(db *gorm.DB) *PingHandler {
	return &PingHandler{db: db}
}

// Ping handles GET /ping
// @Summary Liveness check
// @Description Reports service status and whether the database answers
// @Tags system
// @Produce json
// @Success 200 {object} models.PingResponse "Service and database are up"
// @Failure 503 {object} models.PingResponse "Database unreachable"
// @Router /ping [get]
func (h *PingHandler) Ping(c *gin.Context) {
	response := models.PingResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Service:   logging.ServiceName,
		Database:  "ok",
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	if err := database.Ping(ctx, h.db); err != nil {
		response.Status = "degraded"
		response.Database = "unavailable"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}
