package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	clientdelivery "github.com/tair/retail-management/internal/client/delivery/http"
	clientrepository "github.com/tair/retail-management/internal/client/repository"
	employeedelivery "github.com/tair/retail-management/internal/employee/delivery/http"
	employeerepository "github.com/tair/retail-management/internal/employee/repository"
	productdelivery "github.com/tair/retail-management/internal/product/delivery/http"
	productrepository "github.com/tair/retail-management/internal/product/repository"
	purchasedelivery "github.com/tair/retail-management/internal/purchase/delivery/http"
	purchaserepository "github.com/tair/retail-management/internal/purchase/repository"
	"github.com/tair/retail-management/internal/sale"
	salerepository "github.com/tair/retail-management/internal/sale/repository"
	"github.com/tair/retail-management/internal/server"
	"github.com/tair/retail-management/kafka"
	"github.com/tair/retail-management/pkg/database"
	"github.com/tair/retail-management/pkg/logger"
	"github.com/tair/retail-management/pkg/tracing"

	_ "github.com/tair/retail-management/docs"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "retail-management")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting retail management service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "retaildb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Build repositories and run migrations
	clientRepo := clientrepository.NewGormClientRepository(db)
	employeeRepo := employeerepository.NewGormEmployeeRepository(db)
	productRepo := productrepository.NewGormProductRepository(db)
	purchaseRepo := purchaserepository.NewGormPurchaseRepository(db)
	saleRepo := salerepository.NewGormSaleRepository(db)

	migrators := []interface{ AutoMigrate() error }{
		clientRepo, employeeRepo, productRepo, purchaseRepo, saleRepo,
	}
	for _, m := range migrators {
		if err := m.AutoMigrate(); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Build HTTP handlers
	clientHandler := clientdelivery.NewClientHandler(clientRepo)
	employeeHandler := employeedelivery.NewEmployeeHandler(employeeRepo)
	productHandler := productdelivery.NewProductHandler(productRepo)
	purchaseHandler := purchasedelivery.NewPurchaseHandler(purchaseRepo)

	// Sale handler comes from Wire DI
	saleHandler, err := sale.InitializeHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize sale handler")
	}

	// Optional Kafka publisher for sale events
	var kafkaPublisher *kafka.Publisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		kafkaPublisher, err = kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to initialize Kafka publisher, sale events disabled")
		} else {
			defer kafkaPublisher.Close()
			saleHandler.SetKafkaPublisher(kafkaPublisher)
		}
	}

	// Optional Redis client for rate limiting and response caching
	var redisClient *redis.Client
	if redisAddr := getEnv("REDIS_ADDR", ""); redisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to connect to Redis, rate limiting and caching disabled")
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	// Setup router
	router := mux.NewRouter()

	middlewareConfig := server.DefaultMiddlewareConfig()
	server.RegisterMiddlewares(router, middlewareConfig)

	if redisClient != nil {
		router.Use(server.GlobalRateLimiter(redisClient))
		// Response caching is opt-in: cached list responses lag behind
		// writes for up to the cache TTL.
		if getEnv("CACHE_ENABLED", "false") == "true" {
			router.Use(server.CacheMiddleware(redisClient, server.DefaultCacheConfig()))
		}
	}

	// Register routes
	clientHandler.RegisterRoutes(router)
	employeeHandler.RegisterRoutes(router)
	productHandler.RegisterRoutes(router)
	purchaseHandler.RegisterRoutes(router)
	saleHandler.RegisterRoutes(router)

	// Health check endpoint
	server.RegisterHealthCheck(router, sqlDB)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// CORS middleware
	corsHandler := server.SetupCORS(middlewareConfig)

	httpPort := getEnv("HTTP_PORT", "8080")

	logger.Logger.Info().
		Str("port", httpPort).
		Str("metrics_endpoint", "/metrics").
		Str("swagger_endpoint", "/swagger/index.html").
		Msg("HTTP server started")

	go func() {
		if err := http.ListenAndServe(":"+httpPort, corsHandler(router)); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
