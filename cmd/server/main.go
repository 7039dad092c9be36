package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"personal-finance/internal/config"
	"personal-finance/internal/database"
	"personal-finance/internal/events"
	"personal-finance/internal/middleware"
	"personal-finance/internal/repositories"
	"personal-finance/internal/services"
	"personal-finance/internal/storage"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("failed to load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer db.Close()

	receipts, closeReceipts, err := newReceiptStorage(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer closeReceipts()

	publisher, err := newEventPublisher(cfg.Events, logger)
	if err != nil {
		return err
	}
	defer publisher.Close()

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	guarded := services.NewGuardedPublisher(publisher, services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig()), metrics)
	entryLogger := services.NewEntryLogger(logger)

	accountRepo := repositories.NewAccountRepository(db.DB)
	cardRepo := repositories.NewCreditCardRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)

	categoryStore := services.NewCategoryStore(categoryRepo, guarded, logger)
	transactionStore := services.NewTransactionStore(
		transactionRepo, accountRepo, cardRepo, categoryRepo,
		receipts, guarded, logger, time.Now,
	)

	deps := routeDeps{
		cfg:    cfg,
		db:     db.DB,
		logger: logger,
		entry: services.NewTransactionEntryService(
			services.NewAccountStore(accountRepo),
			services.NewCreditCardStore(cardRepo),
			categoryStore,
			transactionStore,
			transactionRepo,
			entryLogger,
			metrics,
			time.Now,
		),
		categories: services.NewCategoryPanelService(categoryStore, categoryRepo, entryLogger, metrics),
		tokens:     services.NewTokenService(&cfg.JWT),
		limiter:    middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst),
	}
	go deps.limiter.Run(ctx)

	e := newServer(deps)
	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}

func newReceiptStorage(ctx context.Context, cfg config.StorageConfig) (services.ReceiptStorage, func(), error) {
	if cfg.Backend == config.StorageBackendGCS {
		store, err := storage.NewGCSStore(ctx, cfg.Bucket, cfg.CredentialsFile, cfg.MaxReceiptBytes)
		if err != nil {
			return nil, nil, fmt.Errorf("create gcs receipt storage: %w", err)
		}
		return store, func() { _ = store.Close() }, nil
	}

	store, err := storage.NewLocalStore(cfg.Dir, cfg.PublicBaseURL, cfg.MaxReceiptBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("create local receipt storage: %w", err)
	}
	return store, func() {}, nil
}

func newEventPublisher(cfg config.EventsConfig, logger *slog.Logger) (events.Publisher, error) {
	if !cfg.Enabled() {
		logger.Info("AMQP_URL not set, domain events are discarded")
		return events.NoopPublisher{}, nil
	}

	publisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.Exchange, cfg.Queue, logger)
	if err != nil {
		return nil, fmt.Errorf("connect event publisher: %w", err)
	}
	return publisher, nil
}
