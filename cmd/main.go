package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"sauna_api/internal/config"
	"sauna_api/internal/handlers"
	"sauna_api/internal/logger"
	"sauna_api/internal/repository"
	"sauna_api/internal/repository/db"
	"sauna_api/internal/server"
	"sauna_api/internal/service"
)

// @title                       SOne API
// @version                     0.1.0
// @description                 REST API for sauna status fetching and control
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
func main() {
	configPath := flag.String("config", "", "path to config file (default configs/config.yml)")
	flag.Parse()

	// load config.yml + SAUNA_* env
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.New(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.New(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	// open DB
	sqlDB, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		log.Fatalw("failed to init sqlite", "path", cfg.DB.Path, "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, service.Options{
		SigningKey: cfg.Auth.SigningKey,
		TokenTTL:   cfg.Auth.TokenTTL,
		Log:        log,
	})
	apiHandler := handlers.NewHandler(services, log, handlers.Options{
		AuthEnabled:    cfg.Auth.Enabled,
		SignUpDisabled: !cfg.Auth.AllowSignUp,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RateLimitPerS:  cfg.RateLimit.PerSec,
		RateLimitBurst: cfg.RateLimit.Burst,
	})

	id := services.Discover()
	log.Infow("sauna_ready", "sauna_id", id.SaunaID, "model_name", id.ModelName, "auth_enabled", cfg.Auth.Enabled)

	// start HTTP server
	srv := server.New(cfg.Server.Port, apiHandler.InitRoutes(), server.Timeouts{
		ReadHeader: cfg.Server.ReadHeaderTimeout,
		Write:      cfg.Server.WriteTimeout,
		Idle:       cfg.Server.IdleTimeout,
	})
	errCh := runHTTPServer(srv, log)

	// graceful shutdown
	waitForShutdown(srv, cfg, errCh, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, log *logger.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Infow("http_listen", "addr", srv.Addr())
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	return errCh
}

// waitForShutdown blocks until a termination signal or a server error, then
// stops the server within the configured shutdown timeout.
func waitForShutdown(srv *server.Server, cfg *config.Config, errCh <-chan error, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Infow("shutting down server...", "signal", sig.String())
	case err := <-errCh:
		log.Errorw("error starting server", "err", err)
	}

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
