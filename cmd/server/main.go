package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/aungmyo/ims-backend/internal/app"
	catalogdomain "github.com/aungmyo/ims-backend/internal/catalog/domain"
	customerdomain "github.com/aungmyo/ims-backend/internal/customer/domain"
	ledgerdomain "github.com/aungmyo/ims-backend/internal/ledger/domain"
	purchasingdomain "github.com/aungmyo/ims-backend/internal/purchasing/domain"
	salesdomain "github.com/aungmyo/ims-backend/internal/sales/domain"
	"github.com/aungmyo/ims-backend/internal/server"
	"github.com/aungmyo/ims-backend/kafka"
	"github.com/aungmyo/ims-backend/pkg/database"
	"github.com/aungmyo/ims-backend/pkg/logger"
	"github.com/aungmyo/ims-backend/pkg/ratelimit"
	"github.com/aungmyo/ims-backend/pkg/tracing"
)

func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "ims-backend")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Msg("Starting inventory management service")

	// Tracing
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Tracing disabled, failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
			}
		}()
	}

	// Database
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "imsdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(
		&catalogdomain.Category{},
		&catalogdomain.Product{},
		&ledgerdomain.StockMovement{},
		&customerdomain.Customer{},
		&salesdomain.Invoice{},
		&salesdomain.InvoiceItem{},
		&purchasingdomain.Supplier{},
		&purchasingdomain.PurchaseOrder{},
		&purchasingdomain.PurchaseOrderItem{},
	); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}
	logger.Logger.Info().Msg("Database initialized successfully")

	// Kafka publisher is optional; without brokers events are skipped
	var publisher *kafka.Publisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		publisher, err = kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Kafka disabled, failed to create publisher")
		} else {
			defer publisher.Close()
			logger.Logger.Info().Str("brokers", brokers).Msg("Kafka publisher initialized")
		}
	}

	// Redis-backed rate limiter is optional as well
	var limiter *ratelimit.Limiter
	if redisAddr := getEnv("REDIS_ADDR", ""); redisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: redisAddr})
		maxRequests := getEnvInt("RATE_LIMIT_MAX", 100)
		window := time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second
		limiter = ratelimit.New(redisClient, maxRequests, window)
		logger.Logger.Info().
			Str("redis", redisAddr).
			Int("max_requests", maxRequests).
			Msg("Rate limiter initialized")
	}

	accrualRate := getEnvInt("LOYALTY_ACCRUAL_RATE", 100)

	handlers, err := app.InitializeHandlers(db, publisher, accrualRate)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handlers")
	}

	router := server.NewRouter(handlers, sqlDB, limiter)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	httpPort := getEnv("HTTP_PORT", "8080")
	srv := &http.Server{
		Addr:         ":" + httpPort,
		Handler:      c.Handler(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server shutdown failed")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
