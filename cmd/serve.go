package main

import (
	"context"
	"errors"
	"flooow/internal/api"
	"flooow/internal/config"
	"flooow/internal/simulator"
	"flooow/internal/worker"
	"flooow/pkg/cache/rediscache"
	"flooow/pkg/logger"
	"flooow/pkg/metrics"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context,
	cfg *config.Config,
	sim simulator.Simulator,
	reg *prometheus.Registry) func(ctx context.Context) {
	deps := api.Deps{Registry: reg}
	deps.Simulator = sim

	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func getCache(ctx context.Context, cfg *config.Config) (*rediscache.Cache, func()) {
	cache, err := rediscache.New(ctx, rediscache.Options{
		Addr:      cfg.Redis.Addr,
		Password:  cfg.Redis.Password,
		DB:        cfg.Redis.DB,
		KeyPrefix: cfg.Redis.KeyPrefix,
		TTL:       cfg.Redis.DistributionTTL,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create redis cache", zap.Error(err))
	}

	return cache, func() {
		logger.Info(ctx, "closing redis client...")
		if err := cache.Close(); err != nil {
			logger.Warn(ctx, "could not close redis connection", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			cache, closeCache := getCache(ctx, cfg)
			defer closeCache()

			// otel instruments exported through the prometheus registry
			reg := api.NewRegistry()
			mp, err := api.NewMeterProvider(reg)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			simMetrics, err := metrics.NewSimulations(mp.Meter("flooow"))
			if err != nil {
				logger.Fatal(ctx, "could not create simulation metrics", zap.Error(err))
			}

			sim := simulator.New(simulator.Deps{
				Storage: strg,
				Cache:   cache,
				Metrics: simMetrics,
			}, simulator.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, sim, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, sim, reg)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}

			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(ctx, "could not shut down meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
