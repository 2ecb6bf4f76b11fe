package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/longrunpc/calmato-be/internal/api/middleware"
	"github.com/longrunpc/calmato-be/internal/core/ports"
)

// ctxIdentity extracts the identity injected by the Auth middleware. Presence
// of a positive user id proves the middleware ran; routes wired without it
// fail closed with 401.
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	identity, _ := c.Get(middleware.IdentityKey).(ports.Identity)
	if identity.UserID <= 0 {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}

// optionalIdentity returns the identity when present, or the zero value for
// anonymous requests.
func optionalIdentity(c echo.Context) ports.Identity {
	identity, _ := c.Get(middleware.IdentityKey).(ports.Identity)
	return identity
}

// pathID parses a numeric path parameter, rejecting non-positive values.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// queryInt parses an optional integer query parameter, falling back to def.
func queryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// queryInt64 parses an optional int64 query parameter, falling back to 0.
func queryInt64(c echo.Context, name string) int64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
