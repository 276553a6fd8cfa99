package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"transaction-insights/internal/dto"
	apperrors "transaction-insights/internal/errors"
	"transaction-insights/internal/validation"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

func (s *ErrorHandlerTestSuite) handle(err error) (*httptest.ResponseRecorder, apperrors.ErrorResponse) {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodPost, "/api/ai-search", nil), rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	CustomHTTPErrorHandler(err, c)

	var body apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError() {
	rec, body := s.handle(echo.NewHTTPError(http.StatusNotFound, "Resource not found"))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("SYSTEM_007", body.Error.Code)
	s.Equal("Resource not found", body.Error.Message)
	s.Equal("test-trace-id", body.Error.TraceID)
	s.Contains(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}

func (s *ErrorHandlerTestSuite) TestGenericErrorHidesCause() {
	rec, body := s.handle(errors.New("pq: password authentication failed"))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", body.Error.Code)
	s.NotContains(rec.Body.String(), "password authentication")
}

func (s *ErrorHandlerTestSuite) TestNoTraceID() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	CustomHTTPErrorHandler(errors.New("boom"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), `"trace_id":"unknown"`)
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseIsKept() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.JSON(http.StatusOK, map[string]string{"nl_response": "done"})

	CustomHTTPErrorHandler(errors.New("late"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "done")
}

func (s *ErrorHandlerTestSuite) TestStatusMapping() {
	testCases := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, "VALIDATION_001"},
		{http.StatusUnauthorized, "AUTH_001"},
		{http.StatusForbidden, "AUTH_004"},
		{http.StatusNotFound, "SYSTEM_007"},
		{http.StatusMethodNotAllowed, "VALIDATION_001"},
		{http.StatusRequestEntityTooLarge, "VALIDATION_001"},
		{http.StatusUnprocessableEntity, "VALIDATION_001"},
		{http.StatusTooManyRequests, "SYSTEM_006"},
		{http.StatusInternalServerError, "SYSTEM_001"},
		{http.StatusServiceUnavailable, "SYSTEM_003"},
		{http.StatusTeapot, "SYSTEM_005"},
	}

	for _, tc := range testCases {
		s.Run(http.StatusText(tc.status), func() {
			rec, body := s.handle(echo.NewHTTPError(tc.status))
			s.Equal(tc.status, rec.Code)
			s.Equal(tc.expectedCode, body.Error.Code)
		})
	}
}

func (s *ErrorHandlerTestSuite) TestValidationErrors() {
	err := validation.Shared().Struct(dto.SearchRequest{Query: "  ", AccountID: "abc"})
	s.Require().Error(err)

	rec, body := s.handle(err)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", body.Error.Code)
	s.ElementsMatch([]string{
		"query: must be a non-blank question of at most 1000 characters",
		"account_id: must be a valid account id (UUID)",
	}, body.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestWrappedValidationErrors() {
	err := validation.Shared().Struct(dto.SeedAccountParams{Count: 0, Days: 1000})
	s.Require().Error(err)

	rec, body := s.handle(fmt.Errorf("seed params: %w", err))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.ElementsMatch([]string{
		"count: must be at least 1",
		"days: must be at most 730",
	}, body.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestOversizedBody() {
	s.echo.Use(echomw.BodyLimit("1K"))
	s.echo.POST("/api/ai-search", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/ai-search", strings.NewReader(strings.Repeat("x", 2048)))
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	s.Equal(http.StatusRequestEntityTooLarge, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}
