package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/longrunpc/calmato-be/internal/core/ports"
)

// IdentityKey is the echo context key holding the authenticated ports.Identity.
const IdentityKey = "identity"

// Auth validates the bearer token and injects the resolved identity into the
// request context.
func Auth(issuer ports.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := issuer.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(IdentityKey, identity)
			return next(c)
		}
	}
}

// OptionalAuth resolves the identity when a valid bearer token is present but
// never rejects the request. Used on public reads that personalise behaviour
// (view counting) for signed-in users.
func OptionalAuth(issuer ports.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				if identity, err := issuer.Verify(parts[1]); err == nil {
					c.Set(IdentityKey, identity)
				}
			}
			return next(c)
		}
	}
}
