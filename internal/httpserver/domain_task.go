package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"todopad/internal/middleware"
	taskHTTP "todopad/internal/task/delivery/http"
	taskRepo "todopad/internal/task/repository/postgre"
	taskUC "todopad/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := taskRepo.New(srv.postgresDB, srv.l)
	uc := taskUC.New(repo, srv.parser, srv.scheduler, srv.loc, srv.l)
	h := taskHTTP.New(srv.l, uc)

	taskHTTP.RegisterRoutes(api, h, mw)
	srv.taskUC = uc

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
