package handlers

import (
	"net/http"
	"sort"

	"accounts-service/internal/errors"
	"accounts-service/internal/logging"

	"github.com/labstack/echo/v4"
)

// All handlers answer errors through SendError (4xx) or SendSystemError (5xx).
// Business outcomes of lifecycle operations are not errors: they are returned
// with 200 as dto.OperationResponse.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendValidationError answers 400 with one detail per failing field
func SendValidationError(c echo.Context, fieldErrors map[string]string) error {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, field+": "+message)
	}
	sort.Strings(details)
	return SendError(c, errors.ValidationGeneral, errors.WithDetails(details...))
}

// SendSystemError logs err and answers 500 without exposing it
func SendSystemError(c echo.Context, err error) error {
	ctx := c.Request().Context()
	traceID := getTraceID(c)
	logging.FromContext(ctx).ErrorContext(ctx, "request failed",
		"trace_id", traceID,
		"path", c.Path(),
		"error", err,
	)

	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
