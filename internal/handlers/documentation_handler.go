package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/helloworld/api-backend/internal/services"
)

// DocumentationHandler serves the stored endpoint documentation
type DocumentationHandler struct {
	documentationService *services.DocumentationService
}

// NewDocumentationHandler creates a new documentation handler
func NewDocumentationHandler(documentationService *services.DocumentationService) *DocumentationHandler {
	return &DocumentationHandler{
		documentationService: documentationService,
	}
}

// GetDocumentation handles GET /api/docs
// @Summary Get endpoint documentation
// @Tags documentation
// @Produce json
// @Success 200 {object} services.DocumentationResponse "Documentation entry"
// @Failure 404 {object} models.ErrorResponse "No documentation entry"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/docs [get]
func (h *DocumentationHandler) GetDocumentation(c *gin.Context) {
	response, err := h.documentationService.Get(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}
