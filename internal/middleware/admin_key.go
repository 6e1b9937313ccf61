package middleware

import (
	"crypto/subtle"

	"milano-insights/internal/errors"
	"milano-insights/internal/handlers"

	"github.com/labstack/echo/v4"
)

// AdminKeyHeader is the header carrying the admin API key
const AdminKeyHeader = "X-Admin-Key"

// AdminKey guards administrative endpoints with a static API key.
// When the configured key is empty the admin surface is disabled
// entirely and every request is rejected with 403.
func AdminKey(configuredKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if configuredKey == "" {
				return handlers.SendError(c, errors.AdminDisabled)
			}

			provided := c.Request().Header.Get(AdminKeyHeader)
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(configuredKey)) != 1 {
				return handlers.SendError(c, errors.AdminUnauthorized)
			}

			return next(c)
		}
	}
}
