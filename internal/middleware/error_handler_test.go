package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"auroramart/internal/services"
	"auroramart/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	ctrl    *gomock.Controller
	metrics *service_mocks.MockMetricsRecorderInterface
	handle  echo.HTTPErrorHandler
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.ctrl = gomock.NewController(s.T())
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.handle = NewHTTPErrorHandler(s.metrics)
	s.echo.HTTPErrorHandler = s.handle
}

func (s *ErrorHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) newContext() (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError() {
	c, rec := s.newContext()
	c.Set(TraceIDContextKey, "test-trace-id")
	s.metrics.EXPECT().IncrementCounter(services.MetricAPIError, map[string]string{"code": "CATALOG_001", "status": "404"})

	s.handle(echo.NewHTTPError(http.StatusNotFound, "Resource not found"), c)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "test-trace-id")
	s.Contains(rec.Body.String(), "Resource not found")
}

func (s *ErrorHandlerTestSuite) TestGenericError() {
	c, rec := s.newContext()
	c.Set(TraceIDContextKey, "test-trace-id")
	s.metrics.EXPECT().IncrementCounter(services.MetricAPIError, map[string]string{"code": "SYSTEM_001", "status": "500"})

	s.handle(errors.New("generic error"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_001")
	s.NotContains(rec.Body.String(), "generic error")
}

func (s *ErrorHandlerTestSuite) TestValidationErrors() {
	type query struct {
		Limit int `json:"limit" validate:"max=50"`
	}
	err := validator.New().Struct(query{Limit: 80})
	s.Require().Error(err)

	c, rec := s.newContext()
	s.metrics.EXPECT().IncrementCounter(services.MetricAPIError, gomock.Any())

	s.handle(err, c)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
	s.Contains(rec.Body.String(), "must be at most 50")
}

func (s *ErrorHandlerTestSuite) TestNoTraceID() {
	c, rec := s.newContext()
	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any())

	s.handle(errors.New("test error"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "unknown")
	s.Contains(rec.Header().Get("Content-Type"), "application/json")
}

func (s *ErrorHandlerTestSuite) TestCommittedResponse() {
	c, rec := s.newContext()
	_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})

	s.handle(errors.New("test error"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ok")
}

func (s *ErrorHandlerTestSuite) TestNilMetrics() {
	c, rec := s.newContext()

	NewHTTPErrorHandler(nil)(echo.ErrServiceUnavailable, c)

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_003")
}

func (s *ErrorHandlerTestSuite) TestMapHTTPStatusToErrorCode() {
	testCases := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, "VALIDATION_001"},
		{http.StatusNotFound, "CATALOG_001"},
		{http.StatusMethodNotAllowed, "VALIDATION_001"},
		{http.StatusTooManyRequests, "SYSTEM_006"},
		{http.StatusInternalServerError, "SYSTEM_001"},
		{http.StatusServiceUnavailable, "SYSTEM_003"},
		{999, "SYSTEM_005"},
	}

	for _, tc := range testCases {
		s.Equal(tc.expectedCode, string(mapHTTPStatusToErrorCode(tc.status)), "status %d", tc.status)
	}
}
