package logger_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/pkg/logger"
)

func TestInitConfiguresBaseLogger(t *testing.T) {
	require.NotNil(t, logger.L)

	// Dev default is debug level.
	assert.True(t, logger.L.Enabled(context.Background(), slog.LevelDebug))
}

func TestWithCtxFallsBackToBase(t *testing.T) {
	assert.Same(t, logger.L, logger.WithCtx(context.Background()))
}

func TestInjectLoggerRoundTrip(t *testing.T) {
	var buf strings.Builder
	tagged := slog.New(slog.NewTextHandler(&buf, nil)).With("request_id", "abc123")

	ctx := logger.InjectLogger(context.Background(), tagged)
	got := logger.WithCtx(ctx)
	require.Same(t, tagged, got)

	got.Info("hello")
	assert.Contains(t, buf.String(), "request_id=abc123")
}
