package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/slugkit/pkg/logger"
)

type ctxKey struct{}

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	t.Run("json with extractor", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log, err := logger.NewWithWriter(&buf, logger.Config{Level: "info", Format: "json"},
			logger.StringExtractor(ctxKey{}, "request_id"), nil)
		require.NoError(t, err)

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.InfoContext(ctx, "slug generated", slog.String("slug", "hello-world"))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "slug generated", rec["msg"])
		assert.Equal(t, "hello-world", rec["slug"])
		assert.Equal(t, "req-1", rec["request_id"])
	})

	t.Run("extractor skips missing values", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log, err := logger.NewWithWriter(&buf, logger.Config{}, logger.StringExtractor(ctxKey{}, "request_id"))
		require.NoError(t, err)

		log.With("component", "test").WithGroup("g").InfoContext(context.Background(), "no id")
		assert.NotContains(t, buf.String(), "request_id")
		assert.Contains(t, buf.String(), `"component":"test"`)
	})

	t.Run("level filter", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log, err := logger.NewWithWriter(&buf, logger.Config{Level: "warn", Format: "text"})
		require.NoError(t, err)

		log.Info("hidden")
		log.Warn("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "msg=shown")
	})

	t.Run("invalid config", func(t *testing.T) {
		t.Parallel()

		_, err := logger.NewWithWriter(&bytes.Buffer{}, logger.Config{Level: "loud"})
		require.Error(t, err)

		_, err = logger.NewWithWriter(&bytes.Buffer{}, logger.Config{Format: "xml"})
		require.Error(t, err)
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		" warn ":  slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := logger.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logger.ParseLevel("trace")
	require.Error(t, err)
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.NotNil(t, log)
	log.Error("discarded", slog.Any("error", errors.New("boom")))
}

func TestDecorator_Multi(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	h := logger.NewLogHandlerDecorator(
		slog.NewJSONHandler(&a, nil),
		logger.StringExtractor(ctxKey{}, "request_id"),
	)
	ctx := context.WithValue(context.Background(), ctxKey{}, "req-2")
	slog.New(h).InfoContext(ctx, "one")
	slog.New(slog.NewJSONHandler(&b, nil)).InfoContext(ctx, "two")

	assert.Contains(t, a.String(), `"request_id":"req-2"`)
	assert.NotContains(t, b.String(), "request_id")
}
