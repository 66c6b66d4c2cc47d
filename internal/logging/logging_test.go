package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestNew_JSONOutsideDevelopment(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "accounts-api", "info", "production")

	logger.Info("account frozen", "account_id", "abc")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "account frozen", record["msg"])
	assert.Equal(t, "accounts-api", record["service"])
	assert.Equal(t, "abc", record["account_id"])
}

func TestNew_TextInDevelopmentRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "accounts-api", "warn", "development")

	logger.Info("dropped")
	assert.Empty(t, buf.String())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "msg=kept")
	assert.Contains(t, buf.String(), "service=accounts-api")
}

func TestFromContext(t *testing.T) {
	assert.Equal(t, slog.Default(), FromContext(context.Background()))

	var buf bytes.Buffer
	logger := New(&buf, "svc", "info", "production")
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
}

func TestFromContextOr(t *testing.T) {
	var buf bytes.Buffer
	fallback := New(&buf, "fallback", "info", "production")
	assert.Same(t, fallback, FromContextOr(context.Background(), fallback))

	scoped := New(&buf, "scoped", "info", "production")
	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, FromContextOr(ctx, fallback))
}
