package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/SAP-F-2025/quiz-selection-service/internal/cache"
	"github.com/SAP-F-2025/quiz-selection-service/internal/config"
	"github.com/SAP-F-2025/quiz-selection-service/internal/events"
	"github.com/SAP-F-2025/quiz-selection-service/internal/handlers"
	"github.com/SAP-F-2025/quiz-selection-service/internal/metrics"
	"github.com/SAP-F-2025/quiz-selection-service/internal/repositories/casdoor"
	"github.com/SAP-F-2025/quiz-selection-service/internal/repositories/postgres"
	"github.com/SAP-F-2025/quiz-selection-service/internal/services"
	"github.com/SAP-F-2025/quiz-selection-service/internal/utils"
	"github.com/SAP-F-2025/quiz-selection-service/internal/validator"
	"github.com/SAP-F-2025/quiz-selection-service/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	slogLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(slogLogger)
	logger := utils.NewSlogLogger(slogLogger)

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Redis is optional; stats and users are cached in memory or not at all without it
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = pkg.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("Redis unavailable, continuing without it", "error", err)
		}
	}

	repoManager := postgres.NewRepositoryManager(postgres.RepositoryConfig{
		DB:          db,
		RedisClient: redisClient,
		CasdoorConfig: casdoor.CasdoorConfig{
			Endpoint:         cfg.Casdoor.Endpoint,
			ClientID:         cfg.Casdoor.ClientID,
			ClientSecret:     cfg.Casdoor.ClientSecret,
			Certificate:      cfg.Casdoor.Cert,
			OrganizationName: cfg.Casdoor.Organization,
			ApplicationName:  cfg.Casdoor.Application,
		},
	})
	if err := repoManager.Initialize(); err != nil {
		log.Fatalf("Failed to initialize repositories: %v", err)
	}
	repo := repoManager.GetRepository()

	publisher, err := newEventPublisher(cfg, slogLogger)
	if err != nil {
		log.Fatalf("Failed to initialize event publisher: %v", err)
	}

	serviceConfig := services.DefaultServiceManagerConfig()
	serviceConfig.Selection = services.SelectionConfig{
		PreviewDefaultLimit: cfg.Selection.PreviewDefaultLimit,
		PreviewMaxLimit:     cfg.Selection.PreviewMaxLimit,
	}
	serviceManager := services.NewServiceManager(services.Dependencies{
		Repo:       repo,
		StatsCache: cache.NewStatsCache(redisClient, cfg.Selection.StatsCacheTTL),
		Publisher:  publisher,
		Metrics:    metrics.NewMetrics(prometheus.DefaultRegisterer),
		Logger:     slogLogger,
		Validator: validator.NewWithConfig(validator.Config{
			MigrateLegacyFormats: cfg.Selection.MigrateLegacyFormats,
		}),
	}, serviceConfig)
	if err := serviceManager.Initialize(context.Background()); err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	if !cfg.CasdoorEnabled() {
		logger.Warn("Casdoor is not configured; authenticated routes will reject every token")
	}
	authMiddleware := handlers.NewCasdoorAuthMiddleware(cfg.Casdoor, repo.User())
	handlerManager := handlers.NewHandlerManager(serviceManager, logger, authMiddleware, prometheus.DefaultGatherer)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handlers.SetupMiddleware(router, logger)
	handlerManager.SetupRoutes(router)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	// Services first so the publisher flushes before connections close
	if err := serviceManager.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown services", "error", err)
	}
	if err := repoManager.Shutdown(ctx); err != nil {
		logger.Error("Failed to close repositories", "error", err)
	}

	logger.Info("Server exited")
}

// newEventPublisher uses Kafka when brokers are configured and an in-process channel otherwise
func newEventPublisher(cfg *config.Config, logger *slog.Logger) (events.EventPublisher, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("No Kafka brokers configured, publishing events in-process")
		publisher, _ := events.NewGoChannelEventPublisher(logger)
		return publisher, nil
	}
	return events.NewKafkaEventPublisher(cfg.Kafka.Brokers, cfg.Kafka.TopicPrefix, logger)
}
