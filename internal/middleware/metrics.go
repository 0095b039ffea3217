package middleware

import (
	"strconv"
	"time"

	"face-gallery/internal/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics records HTTP request count, latency, and in-flight gauge.
// Requests are labelled by route pattern so unknown paths share one series.
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			m.HTTPRequestsInFlight.Inc()
			defer m.HTTPRequestsInFlight.Dec()

			err := next(c)
			if err != nil {
				// let the error handler write the status before it is recorded
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			method := c.Request().Method

			m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Response().Status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

			return nil
		}
	}
}
