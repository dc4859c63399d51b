package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/helloworld/api-backend/internal/services"
)

// HealthStatusHandler handles HTTP requests for the stored health status
type HealthStatusHandler struct {
	healthService *services.HealthStatusService
}

// NewHealthStatusHandler creates a new health status handler
func NewHealthStatusHandler(healthService *services.HealthStatusService) *HealthStatusHandler {
	return &HealthStatusHandler{
		healthService: healthService,
	}
}

// CreateHealthStatus handles POST /health
// @Summary Create the health status
// @Tags health
// @Accept json
// @Produce json
// @Param request body services.CreateHealthStatusRequest true "Status message"
// @Success 201 {object} services.CreateHealthStatusResponse "Status stored"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Admin token required"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Security AdminAuth
// @Router /health [post]
func (h *HealthStatusHandler) CreateHealthStatus(c *gin.Context) {
	var req services.CreateHealthStatusRequest
	if !bindRequest(c, &req) {
		return
	}

	response, err := h.healthService.Create(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetHealthStatus handles GET /health
// @Summary Get the health status
// @Description Never fails: when the status cannot be read, the first recorded error is reported instead
// @Tags health
// @Produce json
// @Success 200 {object} services.HealthStatusResponse "Current status"
// @Router /health [get]
func (h *HealthStatusHandler) GetHealthStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthService.Get(c.Request.Context()))
}

// UpdateHealthStatus handles PUT /health
// @Summary Update the health status
// @Description Replaces the status message, creating the entry if absent
// @Tags health
// @Accept json
// @Produce json
// @Param request body services.UpdateHealthStatusRequest true "New status message"
// @Success 200 {object} services.UpdateHealthStatusResponse "Status updated"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Admin token required"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Security AdminAuth
// @Router /health [put]
func (h *HealthStatusHandler) UpdateHealthStatus(c *gin.Context) {
	var req services.UpdateHealthStatusRequest
	if !bindRequest(c, &req) {
		return
	}

	response, err := h.healthService.Update(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteHealthStatus handles DELETE /health
// @Summary Delete the health status
// @Tags health
// @Produce json
// @Param id query int false "Entry ID (defaults to 1)"
// @Success 200 {object} services.DeleteHealthStatusResponse "Status deleted"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Admin token required"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Security AdminAuth
// @Router /health [delete]
func (h *HealthStatusHandler) DeleteHealthStatus(c *gin.Context) {
	var req services.DeleteHealthStatusRequest
	if !bindRequest(c, &req) {
		return
	}

	response, err := h.healthService.Delete(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
