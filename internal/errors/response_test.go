package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(AuthMissingToken, s.traceID)

	s.Equal("AUTH_001", response.Error.Code)
	s.Equal("Authorization token is required", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_Options() {
	response := NewErrorResponse(ValidationGeneral, s.traceID,
		WithDetails("currency: must be a 3-letter code"),
		WithMessage("Request body is invalid"))

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal("Request body is invalid", response.Error.Message)
	s.Equal([]string{"currency: must be a 3-letter code"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError() {
	response := NewValidationError(map[string]string{"pageSize": "must be between 1 and 100"}, s.traceID)

	s.Equal(string(ValidationGeneral), response.Error.Code)
	s.Equal([]string{"pageSize: must be between 1 and 100"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError() {
	internal := errors.New("pq: connection refused")
	response, err := WrapSystemError(internal, s.traceID)

	s.Equal(internal, err)
	s.Equal(string(SystemInternalError), response.Error.Code)
	s.NotContains(response.Error.Message, "pq")
}

func (s *ResponseTestSuite) TestJSONShape() {
	response := NewErrorResponse(AccountNotFound, s.traceID, WithDetails("accountId"))

	data, err := json.Marshal(response)
	s.Require().NoError(err)

	var decoded map[string]map[string]any
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal("ACCOUNT_001", decoded["error"]["code"])
	s.Equal([]any{"accountId"}, decoded["error"]["details"])
	s.Equal(s.traceID, decoded["error"]["trace_id"])
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{AccountInvalidID, http.StatusBadRequest},
		{AuthExpiredToken, http.StatusUnauthorized},
		{AuthInsufficientPermission, http.StatusForbidden},
		{CustomerNotFound, http.StatusNotFound},
		{AccountNotFound, http.StatusNotFound},
		{SystemRouteNotFound, http.StatusNotFound},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemDatabaseError, http.StatusInternalServerError},
		{"UNKNOWN_999", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestClientServerClassification() {
	client := NewErrorResponse(AccountNotFound, s.traceID)
	server := NewErrorResponse(SystemInternalError, s.traceID)

	s.False(client.IsServerError())
	s.True(server.IsServerError())
	s.Equal("[SYSTEM_001] "+GetErrorMessage(SystemInternalError)+" (trace: "+s.traceID+")", server.String())
}
