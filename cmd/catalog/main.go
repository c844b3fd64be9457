package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	_ "github.com/tair/price-list/docs"
	"github.com/tair/price-list/internal/catalog"
	"github.com/tair/price-list/internal/catalog/cache"
	httpDelivery "github.com/tair/price-list/internal/catalog/delivery/http"
	"github.com/tair/price-list/internal/catalog/domain"
	"github.com/tair/price-list/internal/catalog/repository"
	"github.com/tair/price-list/internal/catalog/store"
	"github.com/tair/price-list/internal/catalog/view"
	"github.com/tair/price-list/internal/config"
	"github.com/tair/price-list/kafka"
	"github.com/tair/price-list/pkg/database"
	"github.com/tair/price-list/pkg/logger"
	"github.com/tair/price-list/pkg/tracing"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(logger.Options{
		Service:     cfg.ServiceName,
		Development: cfg.IsDevelopment(),
		Level:       cfg.LogLevel,
	})

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Str("storage", cfg.Storage).
		Str("instance_id", cfg.InstanceID).
		Msg("Starting catalog service")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp, err := tracing.InitTracer(tracing.Config{
		ServiceName:    cfg.ServiceName,
		ServiceVersion: cfg.ServiceVersion,
		Endpoint:       cfg.JaegerEndpoint,
	})
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to initialize tracer - tracing disabled")
	}

	products, categories, pinger, closeDB := openRepositories(cfg)
	defer closeDB()

	redisClient := openRedis(ctx, cfg.Redis)
	if redisClient != nil {
		defer redisClient.Close()
	}
	viewCache := cache.New(redisClient, cfg.Redis.TTL)

	var notifier domain.ChangeNotifier = store.NoopNotifier{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher, err := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Failed to connect to Kafka - change events will not be published")
		} else {
			defer publisher.Close()
			notifier = publisher
		}
	}

	svc, err := catalog.InitializeService(
		repository.NewProductRepositoryWithTracing(products),
		repository.NewCategoryRepositoryWithTracing(categories),
		viewCache,
		notifier,
		store.Config{InstanceID: cfg.InstanceID},
		view.NewEngine(view.ParseLocale(cfg.Locale)),
		prometheus.DefaultRegisterer,
	)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize catalog service")
	}

	if _, err := svc.Store.EnsureDefaultCategory(ctx); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to seed default category")
	}

	if len(cfg.Kafka.Brokers) > 0 {
		startConsumer(ctx, cfg, svc.Store)
	}

	svc.Handler.LimitWrites(httpDelivery.NewRateLimiter(redisClient, cfg.Limit.Writes, cfg.Limit.Window))

	server := newHTTPServer(cfg, svc.Handler, pinger)
	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger_endpoint", "/swagger/index.html").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	<-ctx.Done()
	logger.Logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	if tp != nil {
		if err := tracing.Shutdown(shutdownCtx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Tracer shutdown failed")
		}
	}

	logger.Logger.Info().Msg("Catalog service stopped")
}

func openRepositories(cfg *config.Config) (domain.ProductRepository, domain.CategoryRepository, httpDelivery.Pinger, func()) {
	if cfg.Storage == config.StorageMemory {
		logger.Logger.Warn().Msg("Using in-memory storage - data is lost on restart")
		return repository.NewMemoryProductRepository(), repository.NewMemoryCategoryRepository(), nil, func() {}
	}

	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}

	products := repository.NewGormProductRepository(db)
	categories := repository.NewGormCategoryRepository(db)
	if err := products.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run product migrations")
	}
	if err := categories.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run category migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")
	return products, categories, sqlDB, func() { sqlDB.Close() }
}

// openRedis returns nil when redis is not configured or unreachable
func openRedis(ctx context.Context, cfg config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		logger.Logger.Info().Msg("REDIS_ADDR not set - view cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Logger.Warn().
			Err(err).
			Str("redis_addr", cfg.Addr).
			Msg("Failed to connect to Redis - view cache will be disabled")
		client.Close()
		return nil
	}

	logger.Logger.Info().
		Str("redis_addr", cfg.Addr).
		Dur("ttl", cfg.TTL).
		Msg("Connected to Redis for view caching")
	return client
}

func startConsumer(ctx context.Context, cfg *config.Config, s *store.Store) {
	consumer, err := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, []string{cfg.Kafka.Topic})
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to create Kafka consumer - remote changes will not be picked up")
		return
	}

	consumer.RegisterHandler(kafka.EventTypeCatalogChanged, kafka.NewRefreshHandler(s, s.InstanceID()))
	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to start Kafka consumer")
		consumer.Close()
		return
	}

	go func() {
		<-ctx.Done()
		if err := consumer.Close(); err != nil {
			logger.Logger.Error().Err(err).Msg("Kafka consumer close failed")
		}
	}()
}

func newHTTPServer(cfg *config.Config, handler *httpDelivery.CatalogHandler, pinger httpDelivery.Pinger) *http.Server {
	router := mux.NewRouter()

	mwConfig := httpDelivery.DefaultMiddlewareConfig(cfg.CORSOrigins)
	httpDelivery.RegisterMiddlewares(router, mwConfig)

	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router, pinger)
	httpDelivery.RegisterSwaggerDocs(router, nil)

	router.Handle("/metrics", promhttp.Handler())

	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           httpDelivery.SetupCORS(mwConfig)(router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
