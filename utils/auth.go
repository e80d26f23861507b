package utils

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v5"
	"github.com/samber/lo"
)

const bearerPrefix = "Bearer "

// CreateBearerTokenMiddleware creates a middleware that validates Bearer tokens
func CreateBearerTokenMiddleware(validTokens []string) echo.MiddlewareFunc {
	tokens := lo.Map(lo.Compact(validTokens), func(token string, _ int) []byte {
		return []byte(token)
	})
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if auth == "" {
				return EchoErrorResponse(c, "missing authorization header", http.StatusUnauthorized)
			}
			if !strings.HasPrefix(auth, bearerPrefix) {
				return EchoErrorResponse(c, "invalid authorization header format", http.StatusUnauthorized)
			}

			token := []byte(strings.TrimPrefix(auth, bearerPrefix))
			valid := lo.SomeBy(tokens, func(candidate []byte) bool {
				return subtle.ConstantTimeCompare(candidate, token) == 1
			})
			if !valid {
				return EchoErrorResponse(c, "invalid token", http.StatusUnauthorized)
			}
			return next(c)
		}
	}
}
