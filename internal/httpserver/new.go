package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"todopad/internal/notify"
	"todopad/internal/task"
	"todopad/pkg/dateparse"
	"todopad/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	postgresDB *sql.DB
	parser     *dateparse.Parser
	scheduler  *notify.Scheduler
	loc        *time.Location

	// Middleware settings
	jwtSecret       string
	rateLimitPerMin int
	corsOrigins     []string

	// Built during mapHandlers; used for the startup reminder re-arm.
	taskUC task.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	Parser     *dateparse.Parser
	Scheduler  *notify.Scheduler
	Location   *time.Location

	JWTSecret       string
	RateLimitPerMin int
	CORSOrigins     []string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		postgresDB:      cfg.PostgresDB,
		parser:          cfg.Parser,
		scheduler:       cfg.Scheduler,
		loc:             cfg.Location,
		jwtSecret:       cfg.JWTSecret,
		rateLimitPerMin: cfg.RateLimitPerMin,
		corsOrigins:     cfg.CORSOrigins,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.parser == nil {
		return errors.New("date parser is required")
	}
	if srv.scheduler == nil {
		return errors.New("scheduler is required")
	}
	if srv.jwtSecret == "" {
		return errors.New("jwt secret is required")
	}
	return nil
}
