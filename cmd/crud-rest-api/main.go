// cmd/crud-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/annuyadav31/CRUDExample/internal/api/rest/v1"
	"github.com/annuyadav31/CRUDExample/internal/api/web"
	"github.com/annuyadav31/CRUDExample/internal/bootstrap"
	"github.com/annuyadav31/CRUDExample/internal/infrastructure/persistence"
	"github.com/annuyadav31/CRUDExample/internal/pkg/config"
	"github.com/annuyadav31/CRUDExample/internal/pkg/logger"
	"github.com/annuyadav31/CRUDExample/internal/pkg/metrics"
	"github.com/annuyadav31/CRUDExample/internal/pkg/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; real environment variables still apply
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	db, err := bootstrap.OpenDatabase(context.Background(), restConfig.Database, restConfig.SeedOnStart, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			log.Warn(fmt.Sprintf("failed to close database: %v", err))
		}
	}()

	services, err := bootstrap.NewServices(db, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	r, err := setupRouter(services, log)
	if err != nil {
		return err
	}

	return startServerWithGracefulShutdown(restConfig, r, log)
}

// setupRouter registers middlewares, the JSON API and the HTML pages
func setupRouter(services *bootstrap.Services, log logger.Logger) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(log))
	r.Use(metrics.Handler())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "Content-Disposition", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/metrics", metrics.Exposer())

	v1.SetupRoutes(r, services.Persons, services.PersonExport, services.Countries)

	if err := web.SetupRoutes(r, services.Persons, services.PersonExport, services.Countries, log); err != nil {
		return nil, fmt.Errorf("failed to setup web routes: %w", err)
	}

	return r, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, handler http.Handler, log logger.Logger) error {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info(fmt.Sprintf("Received signal %v, initiating graceful shutdown", sig))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
