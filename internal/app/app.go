package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/auth"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/catalog"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/config"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/event"
	handler "github.com/Gaurang1901/MallMate-WebApp-sub000/internal/handler/http"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/orders"
	redisrepo "github.com/Gaurang1901/MallMate-WebApp-sub000/internal/repository/redis"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/internal/service"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/health"
	pkgkafka "github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/kafka"
	"github.com/Gaurang1901/MallMate-WebApp-sub000/pkg/tracing"
)

// App wires together all dependencies and runs the storefront server.
type App struct {
	cfg             *config.Config
	logger          *slog.Logger
	rdb             *redis.Client
	producer        *pkgkafka.Producer
	httpServer      *http.Server
	tracingShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize Redis client.
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info("connected to Redis",
		slog.String("addr", cfg.RedisAddr),
		slog.Int("db", cfg.RedisDB),
	)

	// Initialize tracing.
	tracingCfg := tracing.DefaultConfig("storefront")
	tracingCfg.Enabled = cfg.TracingEnabled
	tracingCfg.OTLPEndpoint = cfg.TracingEndpoint
	tracingCfg.Environment = cfg.Environment
	tracingShutdown, err := tracing.InitTracer(ctx, tracingCfg)
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	// Initialize Kafka producer.
	kafkaCfg := pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers)
	producer := pkgkafka.NewProducer(kafkaCfg, logger)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	// Build the dependency graph.
	cat := catalog.Default()
	orderStore := orders.NewStore()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL)
	eventProducer := event.NewProducer(producer, logger)

	cartTTL := time.Duration(cfg.CartTTL) * time.Hour
	carts := service.NewCartService(redisrepo.NewCartRepository(rdb, cartTTL), eventProducer, logger)
	wishlist := service.NewWishlistService(redisrepo.NewWishlistRepository(rdb), cat, logger)
	sessions := service.NewSessionService(cat, orderStore, wishlist, carts, logger)
	checkout := service.NewCheckoutService(carts, orderStore, eventProducer, cfg.MockLatency, logger)
	authService := service.NewAuthService(tokens, orderStore, cat, cfg.MockLatency, logger)

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("redis", func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
	healthHandler.Register("kafka", producer.Ping)

	// HTTP router.
	router := handler.NewRouter(handler.Deps{
		Auth:     authService,
		Sessions: sessions,
		Carts:    carts,
		Checkout: checkout,
		Wishlist: wishlist,
		Catalog:  cat,
		Orders:   orderStore,
		Tokens:   tokens,
		Health:   healthHandler,
		Logger:   logger,

		PprofCIDRs: cfg.PprofAllowedCIDRs,
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:             cfg,
		logger:          logger,
		rdb:             rdb,
		producer:        producer,
		httpServer:      httpServer,
		tracingShutdown: tracingShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
	}

	if err := a.tracingShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracing shutdown error", slog.String("error", err.Error()))
	}

	if err := a.rdb.Close(); err != nil {
		a.logger.Error("redis close error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
