package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	analyticsUseCase "github.com/jaykakkad82/mypayments/internal/domain/usecase/analytics"
	customerUseCase "github.com/jaykakkad82/mypayments/internal/domain/usecase/customer"
	paymentUseCase "github.com/jaykakkad82/mypayments/internal/domain/usecase/payment"
	transactionUseCase "github.com/jaykakkad82/mypayments/internal/domain/usecase/transaction"

	"github.com/jaykakkad82/mypayments/internal/infrastructure/adapter/api/handler"
	"github.com/jaykakkad82/mypayments/internal/infrastructure/adapter/api/routes"
	"github.com/jaykakkad82/mypayments/internal/infrastructure/adapter/database"
	"github.com/jaykakkad82/mypayments/internal/infrastructure/adapter/gateway"
	"github.com/jaykakkad82/mypayments/internal/infrastructure/adapter/logger"
	"github.com/jaykakkad82/mypayments/internal/infrastructure/adapter/repository"
	timeProvider "github.com/jaykakkad82/mypayments/internal/infrastructure/adapter/time"
	"github.com/jaykakkad82/mypayments/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}
	db, err := database.Connect(dbConfig, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Run migrations
	if err := database.Migrate(db, appLogger); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Unit of work over the shared connection
	uow := database.NewUnitOfWork(db, appLogger)

	// Payment gateway
	paymentGateway := gateway.NewSimulatedGateway(appLogger)

	// Initialize use cases
	customerService := customerUseCase.NewCustomerService(
		repository.NewCustomerRepository(db, appLogger),
		tp,
		appLogger,
	)
	transactionService := transactionUseCase.NewTransactionService(uow, tp, appLogger)
	paymentService := paymentUseCase.NewPaymentService(uow, paymentGateway, tp, appLogger)
	analyticsService := analyticsUseCase.NewAnalyticsService(
		repository.NewTransactionRepository(db, appLogger),
		appLogger,
	)

	// Optional redis-backed idempotency response cache
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = redisClient.Close() }()
	}

	// Initialize API handlers
	customerHandler := handler.NewCustomerHandler(customerService, appLogger)
	transactionHandler := handler.NewTransactionHandler(transactionService, paymentService, appLogger)
	paymentHandler := handler.NewPaymentHandler(paymentService, appLogger)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, redisClient)
	routes.SetupRoutes(router, customerHandler, transactionHandler, paymentHandler, analyticsHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missing []string

	if cfg.Server.Port == 0 {
		missing = append(missing, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missing = append(missing, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missing = append(missing, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missing = append(missing, "server.shutdownTimeout")
	}
	if cfg.Database.Host == "" {
		missing = append(missing, "database.host")
	}
	if cfg.Database.Port == 0 {
		missing = append(missing, "database.port")
	}
	if cfg.Database.Username == "" {
		missing = append(missing, "database.username")
	}
	if cfg.Database.Database == "" {
		missing = append(missing, "database.database")
	}
	if cfg.Logger.Level == "" {
		missing = append(missing, "logger.level")
	}

	if cfg.Environment == "" {
		missing = append(missing, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configurations: %v", missing)
	}

	return nil
}
