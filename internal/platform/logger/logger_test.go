package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanachai/bookstore-api/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"mixed case accepted", "DEBUG"},
		{"invalid level falls back to info", "verbose"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, err := Setup(config.ServerConfig{Port: 8000, LogLevel: tc.logLevel})
			require.NoError(t, err)
			assert.NotNil(t, log)
			assert.Same(t, log, slog.Default(),
				"Setup installs the logger as the process default")
		})
	}
}

func TestWithLoggerAndFromContext(t *testing.T) {
	base := slog.Default().With(slog.String("trace_id", "abc123"))

	ctx := WithLogger(context.Background(), base)
	assert.Same(t, base, FromContext(ctx))

	t.Run("nil logger panics", func(t *testing.T) {
		assert.Panics(t, func() {
			WithLogger(context.Background(), nil)
		})
	})
}

func TestFromContextOrDefault(t *testing.T) {
	fallback := slog.Default()

	t.Run("nil context returns fallback", func(t *testing.T) {
		//nolint:staticcheck // exercising the nil-context guard on purpose
		assert.Same(t, fallback, FromContextOrDefault(nil, fallback))
	})

	t.Run("empty context returns fallback", func(t *testing.T) {
		assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))
	})

	t.Run("carrying context returns stored logger", func(t *testing.T) {
		stored := slog.Default().With(slog.String("component", "test"))
		ctx := WithLogger(context.Background(), stored)
		assert.Same(t, stored, FromContextOrDefault(ctx, fallback))
	})
}
