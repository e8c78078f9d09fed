package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"remediation-portal/internal/auth"
	"remediation-portal/internal/config"
	"remediation-portal/internal/content"
	"remediation-portal/internal/domain"
	"remediation-portal/internal/events"
	"remediation-portal/internal/handler"
	"remediation-portal/internal/infrastructure/database"
	"remediation-portal/internal/logger"
	"remediation-portal/internal/metrics"
	"remediation-portal/internal/middleware"
	"remediation-portal/internal/repository"
	"remediation-portal/internal/service"
	"remediation-portal/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Configure(cfg.LogLevel)

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), cfg.Database())
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	checks := map[string]handler.Pinger{
		"database": database.NewSchemaCheck(pool),
	}

	// Review events go to Kafka when brokers are configured
	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		checks["kafka"] = events.NewBrokerCheck(cfg.KafkaBrokers)
		logger.Info("Publishing review events",
			slog.String("topic", cfg.KafkaTopic),
			slog.Int("brokers", len(cfg.KafkaBrokers)))
	}

	// Initialize repositories
	userRepo := repository.NewPostgresUserRepository(pool)
	articleRepo := repository.NewPostgresArticleRepository(pool)

	// Initialize services
	v := validator.NewValidator()
	articleService := service.NewArticleService(articleRepo, publisher, v, content.NewProcessor())
	exportService := service.NewExportService(articleRepo, domain.ExportFormat(cfg.ExportDefaultFormat))
	profileService := service.NewProfileService(userRepo, v)

	// Initialize handlers
	articleHandler := handler.NewArticleHandler(articleService)
	reviewHandler := handler.NewReviewHandler(articleService)
	exportHandler := handler.NewExportHandler(exportService)
	profileHandler := handler.NewProfileHandler(profileService)
	healthHandler := handler.NewHealthHandler(checks)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTokenTTL)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.AccessLog())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api", middleware.RequireSession(tokens))
	{
		articles := api.Group("/articles")
		{
			articles.POST("", articleHandler.Create)
			articles.GET("", articleHandler.List)
			articles.GET("/export", exportHandler.StreamArticles)
			articles.GET("/:id", articleHandler.Get)
			articles.PATCH("/:id", articleHandler.Update)
			articles.DELETE("/:id", articleHandler.Delete)
			articles.POST("/:id/submit", articleHandler.Submit)
		}

		review := api.Group("/review/articles", middleware.RequireReviewer())
		{
			review.GET("", reviewHandler.Queue)
			review.POST("/:id/claim", reviewHandler.Claim)
			review.POST("/:id/publish", reviewHandler.Publish)
			review.POST("/:id/reject", reviewHandler.Reject)
			review.POST("/:id/schedule-deletion", reviewHandler.ScheduleDeletion)
		}

		api.GET("/profile", profileHandler.Get)
		api.PATCH("/profile", profileHandler.Update)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	// Flush buffered events after the last request has finished
	if err := publisher.Close(); err != nil {
		logger.Error("Failed to close event publisher",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
