package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"itinerary-service/internal/adapters/cache"
	"itinerary-service/internal/adapters/catalog"
	"itinerary-service/internal/adapters/repositories"
	"itinerary-service/internal/api"
	"itinerary-service/internal/config"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/platform/db"
	"itinerary-service/internal/platform/obs"
	"itinerary-service/internal/ports"
	"itinerary-service/internal/services"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
)

// main is the application composition root.
// It wires the catalog source and itinerary cache behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := obs.NewLogger(os.Stdout, cfg.Mode)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		h, shutdown, err := obs.InitTelemetry()
		if err != nil {
			logger.Error("Failed to initialize telemetry", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() { _ = shutdown(context.Background()) }()
		metricsHandler = h
	}

	plannerMetrics, err := obs.NewPlannerMetrics(otel.Meter(obs.ServiceName))
	if err != nil {
		logger.Error("Failed to create planner metrics", slog.Any("error", err))
		os.Exit(1)
	}

	// The catalog is read once; the planner only ever sees this snapshot.
	attractions := loadAttractions(ctx, cfg, logger)

	planner := services.NewPlanner(attractions,
		services.WithClusterCounts(cfg.Planner.Clusters, cfg.Planner.DiagnosticClusters),
		services.WithLogger(logger),
		services.WithMetrics(plannerMetrics),
	)

	var itineraries services.ItineraryPlanner = planner
	if itineraryCache := newItineraryCache(ctx, cfg, logger); itineraryCache != nil {
		itineraries = services.NewCachedPlanner(planner, itineraryCache, cfg.Cache.TTL, logger, plannerMetrics)
	}

	router := api.NewRouter(api.RouterConfig{
		Planner:        planner,
		Itineraries:    itineraries,
		Logger:         logger,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RequestTimeout: cfg.Server.RequestTimeout,
		MetricsHandler: metricsHandler,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	go func() {
		logger.Info("Server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", slog.Any("error", err))
	}
}

// loadAttractions reads the configured catalog. Failing to reach the source
// is not fatal: the service starts with an empty catalog.
func loadAttractions(ctx context.Context, cfg config.Config, logger *slog.Logger) []domain.Attraction {
	var source ports.AttractionCatalog

	switch cfg.Catalog.Source {
	case "csv":
		source = catalog.NewCSVCatalog(cfg.Catalog.CSVPath)
	case "sqlite", "postgres":
		sqlDB, err := openCatalogDB(cfg)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to open catalog database", slog.Any("error", err))
			return []domain.Attraction{}
		}
		defer sqlDB.Close()
		source = repositories.NewSQLAttractionRepository(sqlDB)
	}

	return services.LoadCatalog(ctx, source, logger)
}

func openCatalogDB(cfg config.Config) (*sql.DB, error) {
	if cfg.Catalog.Source == "postgres" {
		return db.OpenPostgres(cfg.Catalog.DatabaseURL)
	}
	return db.OpenSQLite(cfg.Catalog.SQLitePath)
}

// newItineraryCache returns nil when caching is disabled. An unreachable Redis
// falls back to the in-process cache.
func newItineraryCache(ctx context.Context, cfg config.Config, logger *slog.Logger) ports.ItineraryCache {
	memory := func() ports.ItineraryCache {
		return cache.NewMemoryItineraryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}

	switch cfg.Cache.Backend {
	case "memory":
		return memory()
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.WarnContext(ctx, "Redis unavailable, using in-memory itinerary cache",
				slog.String("addr", cfg.Cache.RedisAddr),
				slog.Any("error", err),
			)
			_ = client.Close()
			return memory()
		}
		return cache.NewRedisItineraryCache(client)
	default:
		return nil
	}
}
