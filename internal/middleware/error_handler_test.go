package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "accounts-service/internal/errors"
	"accounts-service/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

// ErrorHandlerTestSuite defines the test suite for error handler middleware
type ErrorHandlerTestSuite struct {
	suite.Suite
	echo     *echo.Echo
	registry *prometheus.Registry
}

// SetupTest runs before each test
func (s *ErrorHandlerTestSuite) SetupTest() {
	s.registry = prometheus.NewRegistry()
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = NewHTTPErrorHandler(s.registry)
}

// TestErrorHandlerTestSuite runs the test suite
func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) handle(err error, traceID string) (*httptest.ResponseRecorder, apperrors.ErrorResponse) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}

	s.echo.HTTPErrorHandler(err, c)

	var body apperrors.ErrorResponse
	if rec.Body.Len() > 0 {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError() {
	rec, body := s.handle(echo.NewHTTPError(http.StatusNotFound, "Resource not found"), "test-trace-id")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(apperrors.SystemRouteNotFound), body.Error.Code)
	s.Equal("Resource not found", body.Error.Message)
	s.Equal("test-trace-id", body.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError_StatusMapping() {
	tests := []struct {
		status int
		code   apperrors.ErrorCode
	}{
		{http.StatusBadRequest, apperrors.ValidationGeneral},
		{http.StatusMethodNotAllowed, apperrors.ValidationGeneral},
		{http.StatusUnauthorized, apperrors.AuthMissingToken},
		{http.StatusForbidden, apperrors.AuthInsufficientPermission},
		{http.StatusTooManyRequests, apperrors.SystemRateLimitExceeded},
		{http.StatusServiceUnavailable, apperrors.SystemServiceUnavailable},
		{http.StatusTeapot, apperrors.SystemInternalError},
	}

	for _, tt := range tests {
		rec, body := s.handle(echo.NewHTTPError(tt.status), "trace")
		s.Equal(tt.status, rec.Code)
		s.Equal(string(tt.code), body.Error.Code, "status %d", tt.status)
	}
}

func (s *ErrorHandlerTestSuite) TestGenericError() {
	rec, body := s.handle(errors.New("generic error"), "test-trace-id")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(string(apperrors.SystemInternalError), body.Error.Code)
	s.NotContains(rec.Body.String(), "generic error")

	expected := `
# HELP api_errors_total Total number of API errors by code, endpoint, and status
# TYPE api_errors_total counter
api_errors_total{code="SYSTEM_001",endpoint="",status="500"} 1
`
	s.NoError(testutil.GatherAndCompare(s.registry, strings.NewReader(expected), "api_errors_total"))
}

func (s *ErrorHandlerTestSuite) TestValidationErrors() {
	type request struct {
		Currency string `json:"currency" validate:"required,currency_code"`
	}
	err := validation.GetValidator().Struct(request{Currency: "EURO"})
	s.Require().Error(err)

	rec, body := s.handle(err, "trace")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apperrors.ValidationGeneral), body.Error.Code)
	s.Require().Len(body.Error.Details, 1)
	s.Contains(body.Error.Details[0], "currency")
}

func (s *ErrorHandlerTestSuite) TestNoTraceID() {
	_, body := s.handle(errors.New("boom"), "")
	s.Equal("unknown", body.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseIsLeftAlone() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.Require().NoError(c.String(http.StatusOK, "done"))

	s.echo.HTTPErrorHandler(errors.New("late"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("done", rec.Body.String())
	s.Equal(0, testutil.CollectAndCount(s.registry, "api_errors_total"))
}

func (s *ErrorHandlerTestSuite) TestUnknownRouteThroughServer() {
	s.echo.Use(RequestID())

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), string(apperrors.SystemRouteNotFound))
	s.Contains(rec.Body.String(), rec.Header().Get(TraceIDHeader))
}
