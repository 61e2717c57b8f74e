package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/fintara/loanpay/internal/utils"
	"github.com/labstack/echo/v4"
)

const (
	// APIKeyHeader carries the caller's key on ops endpoints
	APIKeyHeader = "X-API-Key"
)

// ValidateAPIKey middleware validates the API key for the ops endpoints.
// An empty configured key disables the check, for local development only.
func ValidateAPIKey(configuredKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if configuredKey == "" {
				return next(c)
			}

			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			if subtle.ConstantTimeCompare([]byte(apiKey), []byte(configuredKey)) != 1 {
				return utils.ErrorResponseHandler(c, http.StatusForbidden, "Invalid API key")
			}

			return next(c)
		}
	}
}
