package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "todopad/pkg/errors"

	"todopad/internal/middleware"
)

var (
	errPickerConflict = pkgErrors.NewHTTPError(400, "picker_at and clear_due are mutually exclusive")
	errBadPickerAt    = pkgErrors.NewHTTPError(400, "picker_at must be RFC 3339")
)

// processSaveReq binds and validates the save request body.
func (h *handler) processSaveReq(c *gin.Context) (saveReq, error) {
	var req saveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, "invalid body")
	}
	req.UserID = middleware.UserIDFromContext(c)
	return req, req.validate()
}

// processPreviewReq binds and validates the preview request body.
func (h *handler) processPreviewReq(c *gin.Context) (previewReq, error) {
	var req previewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, "invalid body")
	}
	return req, req.validate()
}
