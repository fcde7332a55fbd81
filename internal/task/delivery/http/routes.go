package http

import (
	"github.com/gin-gonic/gin"

	"todopad/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// All routes are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.Auth(), h.Save)
		tasks.POST("/preview", mw.Auth(), h.Preview)
		tasks.GET("", mw.Auth(), h.List)
		tasks.GET("/:id", mw.Auth(), h.Detail)
		tasks.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
