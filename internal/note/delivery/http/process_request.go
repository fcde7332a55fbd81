package http

import (
	"github.com/gin-gonic/gin"

	"todopad/internal/middleware"
	pkgErrors "todopad/pkg/errors"
)

// processCreateReq binds and validates the create note request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, "invalid body")
	}
	req.UserID = middleware.UserIDFromContext(c)
	return req, req.validate()
}

// processUpdateReq binds and validates the update note request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, "invalid body")
	}
	req.UserID = middleware.UserIDFromContext(c)
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, pkgErrors.NewHTTPError(400, "id is required")
	}
	return req, req.validate()
}
