package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cardex/internal/config"
	dbRedis "github.com/kailas-cloud/cardex/internal/db/redis"
	"github.com/kailas-cloud/cardex/internal/domain/search/mode"
	"github.com/kailas-cloud/cardex/internal/imagesize"
	logpkg "github.com/kailas-cloud/cardex/internal/logger"
	"github.com/kailas-cloud/cardex/internal/metrics"
	"github.com/kailas-cloud/cardex/internal/repository/sizecache"
	"github.com/kailas-cloud/cardex/internal/transport/api"
	chiTransport "github.com/kailas-cloud/cardex/internal/transport/chi"
	healthuc "github.com/kailas-cloud/cardex/internal/usecase/health"
	"github.com/kailas-cloud/cardex/internal/version"
)

// cacheReadyTimeout bounds the wait for the image size cache at startup.
const cacheReadyTimeout = 10 * time.Second

func newServeCmd(g *globalFlags) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and card browser",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if port > 0 {
				cfg.HTTP.Port = port
			}
			return serve(g.env, cfg)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "override http.port")
	return cmd
}

func serve(env string, cfg config.Config) error {
	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting cardex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Int("datasets", len(cfg.Datasets)),
		zap.Strings("cache_addrs", cfg.Cache.Addrs),
	)

	// Register metrics explicitly (no init())
	metrics.RegisterCatalogMetrics()
	metrics.RegisterHTTPMetrics()

	catalog, err := loadCatalog(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("Catalog loaded",
		zap.Int("records", catalog.Size()),
		zap.Bool("ranking", catalog.Ranking()),
	)

	// Image size prober, cached in Redis/Valkey when configured.
	prober := imagesize.NewProber(time.Duration(cfg.Image.TimeoutSec)*time.Second, logger)
	var images chiTransport.ImageProber = prober

	// Pass nil interface (not typed nil pointer!) when the cache is not configured.
	var cachePinger healthuc.CachePinger
	if len(cfg.Cache.Addrs) > 0 {
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			return fmt.Errorf("create cache store: %w", err)
		}
		defer store.Close()

		if err := store.WaitForReady(context.Background(), cacheReadyTimeout); err != nil {
			// the browser still works without cached sizes
			logger.Warn("Image size cache not ready", zap.Error(err))
		} else {
			logger.Info("Connected to image size cache")
		}

		images = sizecache.New(
			prober, store, cfg.Cache.Prefix,
			time.Duration(cfg.Cache.TTLSec)*time.Second,
			metrics.ImageSizeCacheTotal, logger,
		)
		cachePinger = store
	}

	healthSvc := healthuc.New(catalog, cachePinger)

	server := chiTransport.NewServer(catalog, healthSvc, images, chiTransport.Defaults{
		PageSize:    cfg.Search.DefaultPageSize,
		MaxPageSize: cfg.Search.MaxPageSize,
		Mode:        mode.Mode(cfg.Search.DefaultMode),
		MinFee:      cfg.Search.DefaultMinFee,
		MaxFee:      cfg.Search.DefaultMaxFee,
	}, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      newRouter(server, cfg.Auth.APIKeys, logger),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("http server: %w", err)
	case <-quit:
		logger.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
	return nil
}

// newRouter assembles the middleware chain around the generated routes.
func newRouter(server api.ServerInterface, apiKeys []string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(apiKeys))
	r.Use(metrics.Middleware())
	return api.HandlerWithOptions(server, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: chiTransport.BindErrorHandler,
	})
}
