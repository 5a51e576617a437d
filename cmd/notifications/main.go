package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"product-catalog/internal/catalog"
	"product-catalog/internal/config"
	"product-catalog/internal/notifications"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	os.Exit(run(logger))
}

func run(logger *slog.Logger) int {
	cfg, err := config.LoadNotifications()
	if err != nil {
		logger.Error("load config", "error", err)
		return 1
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		logger.Error("connect rabbitmq", "error", err)
		return 1
	}
	defer conn.Close()

	consumer, err := notifications.NewConsumer(conn, catalog.EventsQueue, cfg.LowStockThreshold, logger)
	if err != nil {
		logger.Error("init consumer", "error", err, "queue", catalog.EventsQueue)
		return 1
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("notifications service started",
		"queue", catalog.EventsQueue,
		"low_stock_threshold", cfg.LowStockThreshold,
	)
	return supervise(ctx, consumer.Listen, cfg.ShutdownTimeout, logger)
}

// supervise runs listen until it returns or ctx is done. After ctx is done
// listen gets up to drain to finish the message in hand.
func supervise(ctx context.Context, listen func(context.Context) error, drain time.Duration, logger *slog.Logger) int {
	errCh := make(chan error, 1)
	go func() {
		errCh <- listen(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("consumer failed", "error", err)
			return 1
		}
		logger.Info("delivery channel closed")
	case <-ctx.Done():
		logger.Info("shutdown signal received")

		deadline := time.NewTimer(drain)
		defer deadline.Stop()
		select {
		case err := <-errCh:
			if err != nil {
				logger.Error("consumer stop failed", "error", err)
				return 1
			}
		case <-deadline.C:
			logger.Warn("consumer shutdown timeout reached", "timeout", drain)
		}
	}

	logger.Info("notifications service stopped")
	return 0
}
