package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAuth rejects requests whose gate context carries no trusted session.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !RequestSessionFrom(c).Authenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}

// RequireAdmin rejects requests without a valid administrator cookie. The gate
// already validated the cookie; only the flag is checked here.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !RequestSessionFrom(c).Admin {
				return echo.NewHTTPError(http.StatusUnauthorized, "administrator session required")
			}
			return next(c)
		}
	}
}
