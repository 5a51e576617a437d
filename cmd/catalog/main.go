package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"product-catalog/internal/catalog"
	cataloghttp "product-catalog/internal/catalog/http"
	"product-catalog/internal/catalog/messaging"
	"product-catalog/internal/catalog/repository"
	"product-catalog/internal/catalog/service"
	"product-catalog/internal/config"

	_ "product-catalog/docs"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	metricCreatedTotal    = "catalog_products_created_total"
	metricUpdatedTotal    = "catalog_products_updated_total"
	metricDeletedTotal    = "catalog_products_deleted_total"
	metricInvalidTotal    = "catalog_product_validation_failures_total"
	metricStockLinesTotal = "catalog_stock_lines_total"
	metricRequestsTotal   = "catalog_http_requests_total"
	migrateSourcePrefix   = "file://"
	postgresDriverName    = "postgres"
)

type productStore interface {
	service.Repository
	cataloghttp.HealthChecker
}

// @title        Product Catalog API
// @version      1.0
// @description  Product catalog with validated submissions, cart sessions and stock reconciliation at checkout.
// @host         localhost:8080
// @BasePath     /
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	os.Exit(run(logger))
}

func run(logger *slog.Logger) int {
	cfg, err := config.LoadCatalog()
	if err != nil {
		logger.Error("load config", "error", err)
		return 1
	}

	var (
		repo   productStore
		orders service.OrderHistory
	)
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		db, err := openDatabase(cfg)
		if err != nil {
			logger.Error("open database", "error", err)
			return 1
		}
		defer db.Close()

		repo = repository.NewPostgres(db)
		orders = repository.NewPostgresOrders(db)
	case config.StoreDriverMemory:
		logger.Warn("using in-memory store; data is lost on exit")
		repo = repository.NewMemory()
		orders = repository.NewMemoryOrders()
	}

	var publisher service.Publisher = messaging.NopPublisher{}
	if cfg.RabbitMQURL != "" {
		rabbitConn, err := amqp.Dial(cfg.RabbitMQURL)
		if err != nil {
			logger.Error("connect rabbitmq", "error", err)
			return 1
		}
		defer rabbitConn.Close()

		rabbit, err := messaging.NewRabbitPublisher(rabbitConn, catalog.EventsQueue)
		if err != nil {
			logger.Error("init publisher", "error", err)
			return 1
		}
		defer rabbit.Close()
		publisher = rabbit
	} else {
		logger.Warn("RABBITMQ_URL not set; product events are dropped")
	}

	metrics := service.Metrics{
		Created: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricCreatedTotal,
			Help: "Total number of products created",
		}),
		Updated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricUpdatedTotal,
			Help: "Total number of products updated",
		}),
		Deleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricDeletedTotal,
			Help: "Total number of products deleted",
		}),
		ValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricInvalidTotal,
			Help: "Total number of product submissions rejected by validation",
		}),
		StockLines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricStockLinesTotal,
			Help: "Cart lines processed by stock reconciliation, by result",
		}, []string{"result"}),
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: metricRequestsTotal,
		Help: "HTTP requests by method, route and status class",
	}, []string{"method", "route", "status"})
	prometheus.MustRegister(
		metrics.Created,
		metrics.Updated,
		metrics.Deleted,
		metrics.ValidationFailures,
		metrics.StockLines,
		requests,
	)

	svc := service.New(repo, orders, publisher, logger, metrics)
	carts := cataloghttp.NewCartStore(cfg.CartIdleTimeout)
	handler := cataloghttp.NewHandler(svc, carts, cataloghttp.EnglishMessages)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cataloghttp.RequestIDMiddleware())
	router.Use(cataloghttp.AccessLogMiddleware(logger))
	router.Use(cataloghttp.MetricsMiddleware(requests))
	cataloghttp.RegisterRoutes(router, handler, repo)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go carts.RunSweeper(ctx, cfg.CartSweepInterval, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("catalog service started", "addr", cfg.HTTPAddr, "store", cfg.StoreDriver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("http server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		return 1
	}
	logger.Info("catalog service stopped")
	return 0
}

func openDatabase(cfg config.Catalog) (*sql.DB, error) {
	if err := runMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	db, err := sql.Open(postgresDriverName, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(context.Background(), cfg.DBPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func runMigrations(databaseURL, migrationsPath string) error {
	m, err := migrate.New(migrateSourcePrefix+migrationsPath, databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
