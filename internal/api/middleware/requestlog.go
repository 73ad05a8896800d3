package middleware

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestLog returns Echo middleware that logs each request with
// structured fields. A request ID is generated when the caller did not
// supply one, and echoed back in the response header.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			reqID := ensureRequestID(c)

			err := next(c)

			log.Info("request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"remote_ip", c.RealIP(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			)
			return err
		}
	}
}

// ensureRequestID reads the inbound X-Request-ID, minting one when
// absent, and mirrors it on the response and the echo context.
func ensureRequestID(c echo.Context) string {
	reqID := c.Request().Header.Get(echo.HeaderXRequestID)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	c.Set("request_id", reqID)
	c.Response().Header().Set(echo.HeaderXRequestID, reqID)
	return reqID
}
