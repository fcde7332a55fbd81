package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todopad/config"
	"todopad/config/postgre"
	_ "todopad/docs" // Swagger docs
	"todopad/internal/httpserver"
	"todopad/internal/notify"
	"todopad/pkg/dateparse"
	"todopad/pkg/log"
)

// @title       Todopad API
// @description Task and note manager with inline natural-language due dates and reminders.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Todopad...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Timezone
	loc, err := time.LoadLocation(cfg.Notify.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Notify.Timezone, err)
		loc = time.UTC
	}

	// 4. Date parser
	parser, err := dateparse.NewParser(loc.String(), nil)
	if err != nil {
		logger.Errorf(ctx, "Failed to build date parser: %v", err)
		return
	}

	// 5. Postgres
	db, err := postgre.Connect(ctx, cfg.Postgres.DSN())
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to postgres: %v", err)
		return
	}
	defer db.Close()

	// 6. Reminder scheduler
	scheduler := notify.New(logger, notify.NewLogNotifier(logger), loc, cfg.Notify.Lead)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		PostgresDB:      db,
		Parser:          parser,
		Scheduler:       scheduler,
		Location:        loc,
		JWTSecret:       cfg.Auth.JWTSecret,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		CORSOrigins:     cfg.CORS.AllowedOrigins,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
