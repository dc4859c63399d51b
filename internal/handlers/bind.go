package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/helloworld/api-backend/internal/validators"
)

// bindRequest decodes a JSON or form body, or query parameters when the
// request has no body. Failures are attached to the context as bind errors.
func bindRequest(c *gin.Context, obj any) bool {
	var err error
	if c.Request.ContentLength == 0 {
		err = c.ShouldBindQuery(obj)
	} else {
		err = c.ShouldBind(obj)
	}
	if err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return false
	}
	return true
}

// pathID parses the :id path parameter
func pathID(c *gin.Context) (uint, bool) {
	id, err := validators.ParseID(c.Param("id"), "id")
	if err != nil {
		_ = c.Error(err)
		return 0, false
	}
	return id, true
}
