package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"todopad/internal/middleware"
	noteHTTP "todopad/internal/note/delivery/http"
	noteRepo "todopad/internal/note/repository/postgre"
	noteUC "todopad/internal/note/usecase"
)

// setupNoteDomain initializes the note domain and registers its routes.
func (srv *HTTPServer) setupNoteDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := noteRepo.New(srv.postgresDB, srv.l)
	uc := noteUC.New(repo, srv.l)
	h := noteHTTP.New(srv.l, uc)

	noteHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Note domain registered")
	return nil
}
