package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/net/netutil"

	"resourcemetrics/internal/cache"
	"resourcemetrics/internal/config"
	"resourcemetrics/internal/handler"
	"resourcemetrics/internal/metrics"
	custommiddleware "resourcemetrics/internal/middleware"
	"resourcemetrics/internal/publicid"
	"resourcemetrics/internal/repository"
	"resourcemetrics/internal/router"
	"resourcemetrics/internal/service"
	"resourcemetrics/internal/validation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(ctx, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

type store interface {
	service.Repository
	Close()
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	namer, err := cfg.Metrics.Namer()
	if err != nil {
		return fmt.Errorf("invalid metrics config: %w", err)
	}

	reporter := metrics.NewReporter(cfg.Metrics.ReportInterval, logger)

	var backend metrics.Backend
	switch cfg.Metrics.Backend {
	case "memory":
		memory := metrics.NewMemoryBackend()
		reporter.Add("backend", func() []any {
			return []any{slog.Int64("created", memory.Created())}
		})
		reporter.WithMeters(memory.Snapshot)
		backend = memory
	case "prometheus":
		registry := prometheus.NewRegistry()
		reporter.Add("backend", metrics.GatherSource(registry))
		backend = metrics.NewPrometheusBackend(registry)
	default:
		return fmt.Errorf("unknown metrics backend %q", cfg.Metrics.Backend)
	}

	var repo store
	switch cfg.Store.Driver {
	case "memory":
		repo = repository.NewMemoryRepository()
	case "postgres":
		pg, err := repository.NewPostgresRepository(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("failed to create repository: %w", err)
		}
		reporter.Add("pool", func() []any {
			stat := pg.Pool().Stat()
			return []any{
				slog.Int("acquired", int(stat.AcquiredConns())),
				slog.Int("idle", int(stat.IdleConns())),
				slog.Int("total", int(stat.TotalConns())),
				slog.Int("max", int(stat.MaxConns())),
			}
		})
		repo = pg
	default:
		return fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	defer repo.Close()

	codec, err := publicid.New()
	if err != nil {
		return fmt.Errorf("failed to create code codec: %w", err)
	}

	widgetCache, err := cache.New(cfg.Cache.MaxSizePow2)
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}
	defer widgetCache.Close()

	instrumentor := custommiddleware.NewInstrumentor(backend, cfg.Metrics.Defaults(), logger,
		custommiddleware.WithNamer(namer),
	)

	reporter.Add("instrumentor", func() []any {
		timers, counters := instrumentor.Stats()
		return []any{slog.Int("timers", timers), slog.Int("counters", counters)}
	})
	reporter.Add("cache", func() []any {
		hits, misses, ratio := widgetCache.Stats()
		return []any{slog.Uint64("hits", hits), slog.Uint64("misses", misses), slog.Float64("ratio", ratio)}
	})
	reporter.Add("runtime", func() []any {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)
		return []any{
			slog.Int("goroutines", runtime.NumGoroutine()),
			slog.Float64("heap_alloc_mb", float64(memStats.HeapAlloc)/1024/1024),
		}
	})
	reporter.Start(ctx)
	defer reporter.Close()

	widgetService := service.NewWidgetService(repo, codec, widgetCache)
	widgetValidator := validation.NewWidgetValidator(cfg.Validation.MaxNameLength, cfg.Validation.MaxBatchSize)
	h := handler.New(widgetService, widgetValidator, logger)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.Server.MaxRequestBodySize))
	if cfg.RateLimit.Enabled {
		e.Use(custommiddleware.RateLimit(cfg.RateLimit, logger, "/api/v1/health"))
	}

	resources := h.Resources()
	if cfg.Pprof.Enabled {
		resources = append(resources, custommiddleware.PprofResource(cfg.Pprof.Secret))
		logger.Info("pprof endpoints enabled", slog.String("path", "/debug/pprof/*"))
	}

	r := router.New(e, instrumentor, logger)
	if err := r.Register(resources...); err != nil {
		return fmt.Errorf("failed to register routes: %w", err)
	}

	wrapped := 0
	for _, b := range r.Bindings() {
		if b.Wrapped() {
			wrapped++
		}
	}
	logger.Info("routes registered",
		slog.Int("routes", len(r.Bindings())),
		slog.Int("instrumented", wrapped),
		slog.String("backend", cfg.Metrics.Backend))

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", httpAddr),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	listener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		listener = netutil.LimitListener(listener, cfg.Server.MaxConnections)
	}

	httpServer := &http.Server{
		Handler:        e,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}

	go func() {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	return nil
}
