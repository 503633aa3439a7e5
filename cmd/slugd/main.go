// Command slugd serves slug generation, uniqueness resolution and slug
// reservations over HTTP. See internal/httpapi for the endpoints.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/slugkit/internal/httpapi"
	"github.com/dmitrymomot/slugkit/internal/server"
	"github.com/dmitrymomot/slugkit/pkg/config"
	"github.com/dmitrymomot/slugkit/pkg/health"
	"github.com/dmitrymomot/slugkit/pkg/logger"
	"github.com/dmitrymomot/slugkit/pkg/slug"
)

const sentryFlushTimeout = 2 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "slugd: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log, err := logger.New(cfg.Log, httpapi.RequestIDExtractor())
	if err != nil {
		return err
	}
	log = log.With(slog.String("store", cfg.Store))

	slugOpts, err := cfg.Slug.Options()
	if err != nil {
		return err
	}
	normalizer := slug.New(slugOpts...)
	if mode, ok := normalizer.Mode(); ok {
		log.Info("transliteration selected", slog.String("mode", mode.String()))
	}

	ctx := context.Background()
	b, err := openBackend(ctx, cfg, normalizer, log)
	if err != nil {
		return err
	}

	if err := health.Run(ctx, b.checks, health.WithLogger(log), health.WithTimeout(cfg.HealthTimeout)); err != nil {
		return errors.Join(err, b.close(ctx))
	}

	api := httpapi.New(normalizer,
		httpapi.WithLogger(log),
		httpapi.WithChecker(b.checker, cfg.Slug.ResolverOptions(log)...),
		httpapi.WithReservations(b.reservations),
		httpapi.WithAllowedTables(cfg.AllowedTables...),
		httpapi.WithDefaultColumn(cfg.Slug.DefaultColumn),
		httpapi.WithBatchConcurrency(cfg.BatchWorkers),
	)

	opts := []server.Option{
		server.WithLogger(log),
		server.WithAddress(cfg.Addr),
		server.WithShutdownTimeout(cfg.ShutdownTimeout),
		server.WithHealthTimeout(cfg.HealthTimeout),
		server.WithMiddleware(httpapi.RequestID(), httpapi.Recover(log)),
		server.WithRoutes(api.Routes),
	}
	for name, check := range b.checks {
		opts = append(opts, server.WithHealthCheck(name, check))
	}
	opts = append(opts,
		server.WithShutdownHook(b.close),
		server.WithShutdownHook(logger.FlushSentry(sentryFlushTimeout)),
	)

	return server.New(opts...).Run()
}
