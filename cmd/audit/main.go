package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/tair/retail-management/kafka"
	"github.com/tair/retail-management/pkg/logger"
	"github.com/tair/retail-management/pkg/tracing"
)

// Audit worker: consumes sale events and writes them to the audit log.
func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "retail-audit")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

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

	brokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	groupID := getEnv("KAFKA_GROUP_ID", "retail-audit")

	consumer, err := kafka.NewConsumer(brokers, groupID, []string{kafka.TopicSaleCreated})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
	}
	defer consumer.Close()

	consumer.RegisterHandler(kafka.EventTypeSaleCreated, func(ctx context.Context, event kafka.SaleCreatedEvent) error {
		logger.Info(ctx).
			Str("event_id", event.EventID).
			Uint("sale_id", event.SaleID).
			Uint("client_id", event.ClientID).
			Uint("employee_id", event.EmployeeID).
			Float64("total_amount", event.TotalAmount).
			Str("status", event.Status).
			Int("items", len(event.Items)).
			Time("timestamp", event.Timestamp).
			Msg("Sale recorded")
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start Kafka consumer")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down audit worker...")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
