// Package server wires the metrics API: snapshot store, capability cache,
// series service, HTTP and gRPC listeners and background workers.
package server

import (
	"compress/gzip"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/sbilibin2017/gophpowa/internal/capabilities"
	"github.com/sbilibin2017/gophpowa/internal/configs"
	"github.com/sbilibin2017/gophpowa/internal/configs/compressor"
	dbConfig "github.com/sbilibin2017/gophpowa/internal/configs/db"
	"github.com/sbilibin2017/gophpowa/internal/configs/hasher"
	grpcHandlers "github.com/sbilibin2017/gophpowa/internal/handlers/grpc"
	httpHandlers "github.com/sbilibin2017/gophpowa/internal/handlers/http"
	httpMiddlewares "github.com/sbilibin2017/gophpowa/internal/middlewares/http"
	dbRepo "github.com/sbilibin2017/gophpowa/internal/repositories/db"
	"github.com/sbilibin2017/gophpowa/internal/repositories/file"
	"github.com/sbilibin2017/gophpowa/internal/repositories/memory"
	"github.com/sbilibin2017/gophpowa/internal/runner"
	"github.com/sbilibin2017/gophpowa/internal/services"
	"github.com/sbilibin2017/gophpowa/internal/telemetry"
	"github.com/sbilibin2017/gophpowa/internal/worker"
)

// Store is a snapshot store the server can run on.
type Store interface {
	services.SnapshotSource
	services.QueryTextSource
	capabilities.Detector
	worker.Coalescer
	worker.Pinger
}

// Run serves the metrics API until ctx is done or a component fails.
func Run(ctx context.Context, cfg *configs.ServerConfig, logger *zap.Logger) error {
	store, closeStore, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	metrics := telemetry.New()
	svc := NewService(store, cfg, metrics, logger)

	r := runner.NewRunner(logger)
	r.AddServer(&http.Server{
		Addr:              cfg.Address,
		Handler:           NewRouter(svc, store, metrics, logger),
		ReadHeaderTimeout: 10 * time.Second,
	})

	reporters := []func(up bool){metrics.SetStoreUp}
	if cfg.GRPCAddress != "" {
		health := grpcHandlers.NewHealthHandler()
		defer health.Shutdown()

		gs := grpc.NewServer()
		health.Register(gs)
		r.AddServer(runner.NewGRPCServer(cfg.GRPCAddress, gs))
		reporters = append(reporters, health.SetServing)
	}

	if cfg.HealthInterval > 0 {
		r.AddWorker(worker.NewHealthWorker(store, seconds(cfg.HealthInterval), logger, reporters...))
	}
	if cfg.CoalesceInterval > 0 && cfg.CoalesceAge > 0 {
		r.AddWorker(worker.NewCoalesceWorker(
			store,
			seconds(cfg.CoalesceInterval),
			seconds(cfg.CoalesceAge),
			logger,
			worker.WithCoalesceObserver(metrics),
		))
	}

	logger.Info("server starting",
		zap.String("address", cfg.Address),
		zap.String("grpc_address", cfg.GRPCAddress),
		zap.Bool("database", cfg.DatabaseDSN != ""),
		zap.Int("sample_budget", cfg.SampleBudget),
	)
	return r.Run(ctx)
}

// OpenStore opens the PostgreSQL store when a DSN is configured and a memory
// store, optionally seeded, otherwise. The returned func releases it.
func OpenStore(ctx context.Context, cfg *configs.ServerConfig, logger *zap.Logger) (Store, func(), error) {
	if cfg.DatabaseDSN == "" {
		mem := memory.NewSnapshotRepository()
		if cfg.SeedFile != "" {
			n, err := worker.Restore(ctx, file.NewSeedReadRepository(cfg.SeedFile), mem)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to restore seed %s: %w", cfg.SeedFile, err)
			}
			logger.Info("seed restored", zap.String("path", cfg.SeedFile), zap.Int("snapshots", n))
		}
		return mem, func() {}, nil
	}

	conn, err := dbConfig.New(ctx, dbConfig.DriverPostgres, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := dbConfig.Migrate(conn, cfg.MigrationsDir); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	closeConn := func() {
		if err := conn.Close(); err != nil {
			logger.Error("failed to close database", zap.Error(err))
		}
	}
	return dbRepo.NewSnapshotRepository(conn, logger), closeConn, nil
}

// NewService builds the series service over store with a capability cache
// in front of its detector.
func NewService(store Store, cfg *configs.ServerConfig, metrics *telemetry.Metrics, logger *zap.Logger) *services.SeriesService {
	cache := capabilities.NewCache(store, logger,
		capabilities.WithRefreshWindow(seconds(cfg.CapabilityRefresh)),
		capabilities.WithObserver(metrics),
	)
	return services.NewSeriesService(store, cache, logger,
		services.WithSampleBudget(cfg.SampleBudget),
		services.WithRateFloor(cfg.RateFloor),
		services.WithMinInterval(time.Duration(cfg.MinInterval*float64(time.Second))),
		services.WithBlockSize(cfg.BlockSize),
		services.WithQueryTexts(store),
		services.WithMetrics(metrics),
	)
}

// NewRouter mounts the data URLs, the group catalogue, the store ping and
// the Prometheus endpoint.
func NewRouter(
	svc httpHandlers.MetricsService,
	pinger httpHandlers.Pinger,
	metrics *telemetry.Metrics,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(httpMiddlewares.LoggingMiddleware(logger))
	r.Use(httpMiddlewares.GzipMiddleware(compressor.New(gzip.DefaultCompression)))
	r.Use(httpMiddlewares.ETagMiddleware(hasher.New("")))

	httpHandlers.MountMetrics(r, httpHandlers.NewMetricsHandler(svc, logger))
	r.Get("/groups", httpHandlers.NewGroupsHandler(logger))
	r.Get("/ping", httpHandlers.NewPingHandler(pinger, logger))
	r.Handle("/metrics", metrics.Handler())

	return r
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
