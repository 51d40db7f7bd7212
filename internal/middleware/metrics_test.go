package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tinylink/internal/metrics"
	"tinylink/internal/middleware"
	"tinylink/internal/middleware/mocks"
)

func captureMetric(t *testing.T) (*mocks.MockHTTPRecorder, *metrics.HTTPMetric) {
	t.Helper()
	rec := mocks.NewMockHTTPRecorder(t)

	var captured metrics.HTTPMetric
	rec.EXPECT().RecordHTTP(mock.Anything).
		Run(func(m metrics.HTTPMetric) {
			captured = m
		}).Return().Once()
	return rec, &captured
}

func TestMetrics_Redirect(t *testing.T) {
	rec, captured := captureMetric(t)

	e := echo.New()
	e.Use(middleware.Metrics(rec))
	e.GET("/:code", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "https://example.com")
	})

	req := httptest.NewRequest(http.MethodGet, "/Ab3xY9", nil)
	req.RemoteAddr = "192.168.1.1:12345"
	e.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, http.MethodGet, captured.Method)
	assert.Equal(t, "/:code", captured.Path)
	assert.Equal(t, http.StatusFound, captured.StatusCode)
	assert.Equal(t, "192.168.1.1", captured.ClientIP)
	assert.GreaterOrEqual(t, captured.DurationMs, 0.0)
	assert.Less(t, captured.DurationMs, 1000.0)
	assert.Empty(t, captured.Error)
	assert.False(t, captured.Time.IsZero())
}

func TestMetrics_Errors(t *testing.T) {
	tests := []struct {
		name       string
		handlerErr error
		wantStatus int
		wantError  string
	}{
		{
			name:       "plain error",
			handlerErr: errors.New("connection reset"),
			wantStatus: http.StatusOK,
			wantError:  "connection reset",
		},
		{
			name:       "http error",
			handlerErr: echo.NewHTTPError(http.StatusNotFound, "not found"),
			wantStatus: http.StatusNotFound,
			wantError:  "code=404, message=not found",
		},
		{
			name:       "wrapped http error",
			handlerErr: errors.Join(echo.NewHTTPError(http.StatusServiceUnavailable, "down")),
			wantStatus: http.StatusServiceUnavailable,
			wantError:  "code=503, message=down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, captured := captureMetric(t)

			e := echo.New()
			e.Use(middleware.Metrics(rec))
			e.GET("/api/links", func(c echo.Context) error {
				return tt.handlerErr
			})

			e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/links", nil))

			assert.Equal(t, tt.wantStatus, captured.StatusCode)
			assert.Equal(t, tt.wantError, captured.Error)
		})
	}
}

func TestMetrics_Methods(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			rec, captured := captureMetric(t)

			e := echo.New()
			e.Use(middleware.Metrics(rec))
			e.Add(method, "/api/links/:code", func(c echo.Context) error {
				return c.NoContent(http.StatusNoContent)
			})

			e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(method, "/api/links/abc", nil))

			assert.Equal(t, method, captured.Method)
			assert.Equal(t, "/api/links/:code", captured.Path)
		})
	}
}

func TestMetrics_SkipsProfiling(t *testing.T) {
	rec := mocks.NewMockHTTPRecorder(t)

	e := echo.New()
	e.Use(middleware.Metrics(rec))
	e.GET("/debug/pprof/heap", func(c echo.Context) error {
		return c.String(http.StatusOK, "heap")
	})

	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/debug/pprof/heap", nil))

	assert.Equal(t, http.StatusOK, resp.Code)
	rec.AssertNotCalled(t, "RecordHTTP", mock.Anything)
}
