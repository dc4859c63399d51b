package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/helloworld/api-backend/internal/services"
)

// GreetingHandler handles HTTP requests for the greeting message
type GreetingHandler struct {
	greetingService *services.GreetingService
}

// NewGreetingHandler creates a new greeting handler
func NewGreetingHandler(greetingService *services.GreetingService) *GreetingHandler {
	return &GreetingHandler{
		greetingService: greetingService,
	}
}

// CreateGreeting handles POST /helloworld
// @Summary Create the greeting
// @Description Stores the greeting message, replacing any existing one. responseType is echoed back.
// @Tags greeting
// @Accept json
// @Produce json
// @Param request body services.CreateGreetingRequest true "Greeting"
// @Success 201 {object} services.CreateGreetingResponse "Greeting stored"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Admin token required"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Security AdminAuth
// @Router /helloworld [post]
func (h *GreetingHandler) CreateGreeting(c *gin.Context) {
	var req services.CreateGreetingRequest
	if !bindRequest(c, &req) {
		return
	}

	response, err := h.greetingService.Create(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetGreeting handles GET /helloworld
// @Summary Get the greeting
// @Description Returns the stored greeting, or "Hello, World!" when none is stored. Send Accept: text/plain for a plain-text body.
// @Tags greeting
// @Produce json,plain
// @Success 200 {object} services.GreetingResponse "Current greeting"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /helloworld [get]
func (h *GreetingHandler) GetGreeting(c *gin.Context) {
	response, err := h.greetingService.Get(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	switch c.NegotiateFormat(gin.MIMEJSON, gin.MIMEPlain) {
	case gin.MIMEPlain:
		c.String(http.StatusOK, response.Message)
	default:
		c.JSON(http.StatusOK, response)
	}
}

// GetGreetingJSON handles GET /helloworld/json and GET /api/hello
// @Summary Get the greeting as JSON
// @Description Returns the stored greeting, or "Hello, World!" when none is stored
// @Tags greeting
// @Produce json
// @Success 200 {object} services.GreetingResponse "Current greeting"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /helloworld/json [get]
// @Router /api/hello [get]
func (h *GreetingHandler) GetGreetingJSON(c *gin.Context) {
	response, err := h.greetingService.Get(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateGreeting handles PUT /helloworld
// @Summary Update the greeting
// @Description Replaces the greeting message, creating it if absent
// @Tags greeting
// @Accept json
// @Produce json
// @Param request body services.UpdateGreetingRequest true "New greeting"
// @Success 200 {object} services.GreetingResponse "Greeting updated"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Admin token required"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Security AdminAuth
// @Router /helloworld [put]
func (h *GreetingHandler) UpdateGreeting(c *gin.Context) {
	var req services.UpdateGreetingRequest
	if !bindRequest(c, &req) {
		return
	}

	response, err := h.greetingService.Update(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteGreeting handles DELETE /helloworld
// @Summary Delete the greeting
// @Description Removes the stored greeting. Later reads return "Hello, World!".
// @Tags greeting
// @Produce json
// @Success 200 {object} services.GreetingResponse "Greeting deleted"
// @Failure 401 {object} models.ErrorResponse "Admin token required"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Security AdminAuth
// @Router /helloworld [delete]
func (h *GreetingHandler) DeleteGreeting(c *gin.Context) {
	response, err := h.greetingService.Delete(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
