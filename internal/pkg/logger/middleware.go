package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware creates access-log middleware for Echo using our custom logger.
// The visitor session id is read from sessionCookie when present; the
// middleware never issues a cookie itself.
func EchoMiddleware(logger *AppLogger, sessionCookie string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Start timer
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			// Process request
			err := next(c)
			if err != nil {
				// Let Echo write the error response so the status is final
				c.Error(err)
			}

			latency := time.Since(start)
			statusCode := c.Response().Status

			if raw != "" {
				path = path + "?" + raw
			}

			sessionID := "anonymous"
			if cookie, cookieErr := c.Cookie(sessionCookie); cookieErr == nil && cookie.Value != "" {
				sessionID = cookie.Value
			}

			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			logger.LogHTTPRequest(c.Request().Method, path, c.RealIP(), sessionID, requestID, statusCode, latency, err)

			return nil
		}
	}
}
