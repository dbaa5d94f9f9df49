// API server entry point for the ExitReady-Intelligence engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	appanalysis "github.com/turtacn/ExitReady-Intelligence/internal/application/analysis"
	"github.com/turtacn/ExitReady-Intelligence/internal/config"
	"github.com/turtacn/ExitReady-Intelligence/internal/infrastructure/database/redis"
	"github.com/turtacn/ExitReady-Intelligence/internal/infrastructure/messaging/kafka"
	"github.com/turtacn/ExitReady-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/ExitReady-Intelligence/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/ExitReady-Intelligence/internal/intelligence/predictor"
	httpserver "github.com/turtacn/ExitReady-Intelligence/internal/interfaces/http"
	"github.com/turtacn/ExitReady-Intelligence/internal/interfaces/http/handlers"
	"github.com/turtacn/ExitReady-Intelligence/internal/ratelimit"
)

const purgeInterval = 10 * time.Minute

func main() {
	configPath := flag.String("config", "", "path to configuration file (env-only when empty)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(logging.LogConfig{
		Level:            cfg.Log.Level,
		Format:           cfg.Log.Format,
		OutputPaths:      cfg.Log.OutputPaths,
		ErrorOutputPaths: cfg.Log.ErrorOutputPaths,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	logging.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited with error", logging.Err(err))
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadFromEnv()
	}
	return config.Load(path)
}

func run(cfg *config.Config, logger logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := prometheus.NewDefaultAppMetrics()

	limiter, readiness, cleanup, err := buildLimiter(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	svcCfg := appanalysis.Config{
		Limiter:     limiter,
		Metrics:     metrics,
		Logger:      logger,
		TargetScore: cfg.Engine.TargetScore,
	}

	if cfg.Engine.UseRemoteScoring {
		gateway := predictor.NewGateway(&cfg.Gateway, logger)
		svcCfg.Remote = appanalysis.NewRemoteScorer(gateway, appanalysis.NewLocalScorer(), logger,
			func(state predictor.State, elapsed time.Duration) {
				metrics.GatewayRequestsTotal.WithLabelValues(string(state)).Inc()
				metrics.GatewayDuration.Observe(elapsed.Seconds())
				if state != predictor.StateSucceeded {
					metrics.GatewayFallbacks.Inc()
				}
			})
	}

	if cfg.Kafka.Enabled {
		producer := kafka.NewProducer(&cfg.Kafka, logger)
		defer producer.Close()
		svcCfg.Publisher = producer
	}

	svc := appanalysis.NewService(svcCfg)

	router := httpserver.NewRouter(httpserver.RouterConfig{
		AnalysisHandler: handlers.NewAnalysisHandler(svc, logger),
		HealthHandler:   handlers.NewHealthHandler(readiness),
		MaxBodySize:     cfg.Server.MaxBodySize,
		Logger:          logger,
		Metrics:         metrics,
	})
	server := httpserver.NewServer(&cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return server.Stop(shutdownCtx)
}

// buildLimiter wires the configured rate-limit backend and its readiness
// check.  The returned cleanup releases backend resources.
func buildLimiter(ctx context.Context, cfg *config.Config, logger logging.Logger) (ratelimit.Limiter, map[string]handlers.ReadinessCheck, func(), error) {
	readiness := map[string]handlers.ReadinessCheck{}

	if cfg.RateLimit.Backend == "redis" {
		client, err := redis.NewClient(ctx, &cfg.Redis, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		readiness["redis"] = client.Ping
		limiter := redis.NewFixedWindowLimiter(client, cfg.RateLimit.Requests, cfg.RateLimit.Window, logger)
		return limiter, readiness, func() { _ = client.Close() }, nil
	}

	limiter := ratelimit.NewFixedWindowLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)

	// Periodically drop expired caller windows.
	purgeCtx, cancel := context.WithCancel(ctx)
	go func() {
		ticker := time.NewTicker(purgeInterval)
		defer ticker.Stop()
		for {
			select {
			case <-purgeCtx.Done():
				return
			case <-ticker.C:
				limiter.Purge()
			}
		}
	}()

	return limiter, readiness, cancel, nil
}
