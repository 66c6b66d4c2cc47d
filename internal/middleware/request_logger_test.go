package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"accounts-service/internal/logging"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger_AttachesTraceScopedLogger(t *testing.T) {
	var buf bytes.Buffer
	base := logging.New(&buf, "accounts-service", "debug", "production")

	e := echo.New()
	e.Use(RequestID(), RequestLogger(base))
	e.GET("/api/accounts/:accountId", func(c echo.Context) error {
		ctx := c.Request().Context()
		logging.FromContext(ctx).InfoContext(ctx, "inside handler")
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/accounts/abc", nil)
	req.Header.Set(TraceIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var handlerRecord, requestRecord map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &handlerRecord))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &requestRecord))

	assert.Equal(t, "inside handler", handlerRecord["msg"])
	assert.Equal(t, "trace-123", handlerRecord["trace_id"])

	assert.Equal(t, "request completed", requestRecord["msg"])
	assert.Equal(t, "trace-123", requestRecord["trace_id"])
	assert.Equal(t, "/api/accounts/:accountId", requestRecord["route"])
	assert.Equal(t, float64(http.StatusOK), requestRecord["status"])
	assert.Equal(t, slog.LevelInfo.String(), requestRecord["level"])
}

func TestRequestLogger_ErrorStatusLogsAtWarn(t *testing.T) {
	var buf bytes.Buffer
	base := logging.New(&buf, "accounts-service", "debug", "production")

	e := echo.New()
	e.Use(RequestID(), RequestLogger(base))
	e.GET("/bad", func(c echo.Context) error {
		return c.NoContent(http.StatusBadRequest)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bad", nil))

	var record map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record))
	assert.Equal(t, slog.LevelWarn.String(), record["level"])
}
