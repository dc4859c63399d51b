package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/helloworld/api-backend/internal/services"
)

// ErrorLogHandler handles HTTP requests for the error log
type ErrorLogHandler struct {
	errorService *services.ErrorService
}

// NewErrorLogHandler creates a new error log handler
func NewErrorLogHandler(errorService *services.ErrorService) *ErrorLogHandler {
	return &ErrorLogHandler{
		errorService: errorService,
	}
}

// CreateError handles POST /api/errors
// @Summary Record an error
// @Tags errors
// @Accept json
// @Produce json
// @Param request body services.CreateErrorRequest true "Error code and message"
// @Success 201 {object} services.CreateErrorResponse "Error recorded"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/errors [post]
func (h *ErrorLogHandler) CreateError(c *gin.Context) {
	var req services.CreateErrorRequest
	if !bindRequest(c, &req) {
		return
	}

	response, err := h.errorService.CreateError(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListErrors handles GET /api/errors
// @Summary List recorded errors
// @Tags errors
// @Produce json
// @Success 200 {object} services.ErrorListResponse "All errors"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/errors [get]
func (h *ErrorLogHandler) ListErrors(c *gin.Context) {
	response, err := h.errorService.ListErrors(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetError handles GET /api/errors/:id
// @Summary Get a recorded error
// @Tags errors
// @Produce json
// @Param id path int true "Error ID"
// @Success 200 {object} services.ErrorDetail "Error details"
// @Failure 400 {object} models.ErrorResponse "Invalid ID"
// @Failure 404 {object} models.ErrorResponse "Error not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/errors/{id} [get]
func (h *ErrorLogHandler) GetError(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	response, err := h.errorService.GetError(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateError handles PUT /api/errors/:id
// @Summary Update a recorded error
// @Description Changes code and message; the resolution is left untouched
// @Tags errors
// @Accept json
// @Produce json
// @Param id path int true "Error ID"
// @Param request body services.UpdateErrorRequest true "New code and message"
// @Success 200 {object} services.ErrorDetail "Updated error"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 404 {object} models.ErrorResponse "Error not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/errors/{id} [put]
func (h *ErrorLogHandler) UpdateError(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req services.UpdateErrorRequest
	if !bindRequest(c, &req) {
		return
	}

	response, err := h.errorService.UpdateError(c.Request.Context(), id, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteError handles DELETE /api/errors/:id
// @Summary Delete a recorded error
// @Description Deleting an unknown ID also succeeds
// @Tags errors
// @Produce json
// @Param id path int true "Error ID"
// @Success 200 {object} services.DeleteErrorResponse "Error deleted"
// @Failure 400 {object} models.ErrorResponse "Invalid ID"
// @Failure 401 {object} models.ErrorResponse "Admin token required"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Security AdminAuth
// @Router /api/errors/{id} [delete]
func (h *ErrorLogHandler) DeleteError(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	response, err := h.errorService.DeleteError(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
