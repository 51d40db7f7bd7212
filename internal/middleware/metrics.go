package middleware

//go:generate go tool mockery

import (
	"cmp"
	"errors"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"tinylink/internal/metrics"
)

const pprofPrefix = "/debug/pprof"

type HTTPRecorder interface {
	RecordHTTP(m metrics.HTTPMetric)
}

// Metrics records one HTTPMetric per request, keyed by route template so that
// every short code lands under "/:code". Profiling routes are not recorded.
func Metrics(recorder HTTPRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route := cmp.Or(c.Path(), "/")
			if strings.HasPrefix(route, pprofPrefix) {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			elapsed := time.Since(start)

			m := metrics.HTTPMetric{
				Time:       start,
				Method:     c.Request().Method,
				Path:       route,
				StatusCode: c.Response().Status,
				DurationMs: float64(elapsed.Microseconds()) / 1000,
				ClientIP:   c.RealIP(),
			}
			if err != nil {
				m.Error = err.Error()

				var he *echo.HTTPError
				if errors.As(err, &he) {
					m.StatusCode = he.Code
				}
			}
			recorder.RecordHTTP(m)

			return err
		}
	}
}
