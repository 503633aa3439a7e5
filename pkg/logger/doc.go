// Package logger builds the slog loggers used across slugkit.
//
// Output is JSON (or text) on stdout. Request-scoped values such as request
// IDs are added by context extractors, and errors can be forwarded to Sentry.
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//
//	log, err := logger.New(cfg, logger.StringExtractor(requestIDKey{}, "request_id"))
//	if err != nil {
//		return err
//	}
//	log.InfoContext(ctx, "slug generated", slog.String("slug", s))
//
// Environment variables:
//
//	LOG_LEVEL           debug, info, warn, error (default: info)
//	LOG_FORMAT          json or text (default: json)
//	SENTRY_DSN          enables Sentry when set
//	SENTRY_ENVIRONMENT  (default: production)
//	SENTRY_RELEASE
//	SENTRY_MIN_LEVEL    lowest level kept as a Sentry log (default: warn)
//
// Error records always create Sentry issues. When Sentry fails to initialize
// the logger keeps writing locally and reports the failure once.
//
// [NewNope] discards everything and is the default logger for library types
// that accept an optional *slog.Logger.
package logger
