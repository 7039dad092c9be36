package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "personal-finance/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// ErrorHandlerTestSuite defines the test suite for error handler middleware
type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

// SetupTest runs before each test
func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
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

	CustomHTTPErrorHandler(err, c)

	var body apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_EchoHTTPError() {
	rec, body := s.handle(echo.NewHTTPError(http.StatusNotFound, "Route not found"), "test-trace-id")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(apperrors.ResourceNotFound), body.Error.Code)
	s.Equal("Route not found", body.Error.Message)
	s.Equal("test-trace-id", body.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_GenericError() {
	rec, body := s.handle(errors.New("generic error"), "test-trace-id")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", body.Error.Code)
	s.NotContains(rec.Body.String(), "generic error")
	s.Contains(rec.Header().Get("Content-Type"), "application/json")
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_NoTraceID() {
	_, body := s.handle(errors.New("test error"), "")

	s.Equal("unknown", body.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_ValidationErrors() {
	type payload struct {
		Name  string `validate:"required"`
		Color string `validate:"hexcolor"`
	}
	err := validator.New().Struct(payload{Color: "red"})
	s.Require().Error(err)

	rec, body := s.handle(err, "trace-v")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apperrors.ValidationGeneral), body.Error.Code)
	s.ElementsMatch([]string{"Name: is required", "Color: must be a hex color such as #EF4444"}, body.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_CommittedResponse() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})

	CustomHTTPErrorHandler(errors.New("test error"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ok")
}

func (s *ErrorHandlerTestSuite) TestMapHTTPStatusToErrorCode() {
	testCases := []struct {
		status int
		want   apperrors.ErrorCode
	}{
		{http.StatusBadRequest, apperrors.ValidationGeneral},
		{http.StatusUnauthorized, apperrors.AuthMissingToken},
		{http.StatusForbidden, apperrors.AuthInsufficientPermission},
		{http.StatusNotFound, apperrors.ResourceNotFound},
		{http.StatusRequestEntityTooLarge, apperrors.ValidationFileRejected},
		{http.StatusTooManyRequests, apperrors.SystemRateLimitExceeded},
		{http.StatusInternalServerError, apperrors.SystemInternalError},
		{http.StatusServiceUnavailable, apperrors.SystemServiceUnavailable},
		{999, apperrors.SystemUnexpectedError},
	}

	for _, tc := range testCases {
		s.Equal(tc.want, mapHTTPStatusToErrorCode(tc.status), http.StatusText(tc.status))
	}
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_BodyTooLarge() {
	rec, body := s.handle(fmt.Errorf("read body: %w", &http.MaxBytesError{Limit: 1024}), "trace-big")

	s.Equal(http.StatusRequestEntityTooLarge, rec.Code)
	s.Equal(string(apperrors.ValidationFileRejected), body.Error.Code)
	s.Contains(body.Error.Message, "1024")
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_EchoErrorWithoutMessage() {
	rec, body := s.handle(echo.NewHTTPError(http.StatusMethodNotAllowed), "trace-m")

	s.Equal(http.StatusMethodNotAllowed, rec.Code)
	s.Equal(string(apperrors.ValidationGeneral), body.Error.Code)
	s.Equal(http.StatusText(http.StatusMethodNotAllowed), body.Error.Message)
}
