package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// New creates a logger writing to stdout in the configured format.
// When cfg.Sentry.DSN is set, records are also sent to Sentry.
// Context extractors apply to every destination.
func New(cfg Config, extractors ...ContextExtractor) (*slog.Logger, error) {
	return NewWithWriter(os.Stdout, cfg, extractors...)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, cfg Config, extractors ...ContextExtractor) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch cfg.Format {
	case "", "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("logger: unknown format %q", cfg.Format)
	}

	if cfg.Sentry.DSN != "" {
		sentryHandler, err := newSentryHandler(cfg.Sentry)
		if err != nil {
			// Keep logging locally when Sentry cannot start.
			slog.New(handler).Error("failed to initialize sentry", slog.String("error", err.Error()))
		} else {
			handler = newMultiHandler(handler, sentryHandler)
		}
	}

	return slog.New(NewLogHandlerDecorator(handler, extractors...)), nil
}

// NewNope creates a logger that discards all output.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
