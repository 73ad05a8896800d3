package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tdevries/vintedwatch/internal/metrics"
)

// metricsSkipPaths lists operational endpoints excluded from request
// metrics. Probes and scrapes fire constantly and would drown the
// signal from real API traffic.
var metricsSkipPaths = map[string]struct{}{
	"/metrics": {},
	"/healthz": {},
	"/readyz":  {},
}

// Metrics returns Echo middleware that records request counts and
// latency per route.
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			if _, skip := metricsSkipPaths[path]; skip {
				return next(c)
			}

			start := time.Now()

			err := next(c)

			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)

			m.HTTPRequestDuration.
				WithLabelValues(method, path).
				Observe(time.Since(start).Seconds())
			m.HTTPRequestsTotal.
				WithLabelValues(method, path, status).
				Inc()

			return err
		}
	}
}
