package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/sessionledger/internal/pkg/logger"
)

// JSONErrorHandler returns an echo.HTTPErrorHandler that always answers with
// a {"message": ...} body. Errors that are not *echo.HTTPError are logged and
// reported as a generic 500 without leaking their text.
func JSONErrorHandler(appLogger *logger.AppLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := http.StatusText(http.StatusInternalServerError)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else if he.Message != nil {
				message = http.StatusText(status)
			}
		} else {
			appLogger.WithFields(logger.Fields{
				"method":     c.Request().Method,
				"path":       c.Request().URL.Path,
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
			}).WithError(err).Error("Unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, map[string]string{"message": message})
		}
		if err != nil {
			appLogger.WithError(err).Error("Failed to write error response")
		}
	}
}
