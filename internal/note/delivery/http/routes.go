package http

import (
	"github.com/gin-gonic/gin"

	"todopad/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// All routes are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	notes := rg.Group("/notes")
	{
		notes.POST("", mw.Auth(), h.Create)
		notes.GET("", mw.Auth(), h.List)
		notes.GET("/:id", mw.Auth(), h.Detail)
		notes.PUT("/:id", mw.Auth(), h.Update)
		notes.DELETE("/:id", mw.Auth(), h.Delete)
		notes.GET("/:id/export", mw.Auth(), h.Export)
	}
}
