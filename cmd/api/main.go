package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-studio-backend/config"
	_ "go-studio-backend/docs" // Important for Swagger
	v1 "go-studio-backend/internal/delivery/http/v1"
	"go-studio-backend/internal/domain"
	"go-studio-backend/internal/ratelimit"
	"go-studio-backend/internal/repository/postgres"
	"go-studio-backend/internal/usecase"
	"go-studio-backend/pkg/captcha"
	"go-studio-backend/pkg/database"
	"go-studio-backend/pkg/email"
	"go-studio-backend/pkg/logger"
	redispkg "go-studio-backend/pkg/redis"
	"go-studio-backend/pkg/validation"
)

// @title           Studio Contact API
// @version         1.0
// @description     Contact intake backend for the Bright Forge Studio website.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.IsProduction())
	logger.Log.Info("Starting studio contact backend", "port", cfg.Port, "env", cfg.AppEnv)

	// 3. Setup Submission Archive (optional)
	var submissionRepo domain.SubmissionRepository
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()
		submissionRepo = postgres.NewSubmissionRepository(dbPool)
	}

	// 4. Setup Rate Limit Store (Redis when configured, process memory otherwise)
	var rateLimitStore ratelimit.Store = ratelimit.NewMemoryStore()
	if cfg.UpstashRedisURL != "" {
		redisClient, err := redispkg.New(redispkg.Config{
			URL:      cfg.UpstashRedisURL,
			Password: cfg.UpstashRedisPassword,
		})
		if err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to process memory", "error", err)
		} else {
			defer redisClient.Close()
			rateLimitStore = ratelimit.NewRedisStore(redisClient)
		}
	}

	// 5. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - submissions will be rejected with a configuration error")
	}

	// 6. Setup Bot Verification (production requires a secret)
	verifier := captcha.NewVerifier(cfg.TurnstileSecretKey, cfg.IsProduction())

	// 7. Setup UseCase and Validator
	validate := validation.New()
	contactUC := usecase.NewContactUsecase(verifier, emailService, submissionRepo, !cfg.IsProduction())

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:      contactUC,
		Validate:       validate,
		RateLimitStore: rateLimitStore,
		Config:         cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
