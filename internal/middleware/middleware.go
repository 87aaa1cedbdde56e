package middleware

import (
	"net/http"
	"strings"

	"storefront/internal/database"
	"storefront/internal/service"
	"storefront/internal/store"

	"github.com/labstack/echo/v4"
)

// ContextUserKey holds the verified user id (int) on the request context.
const ContextUserKey = "userID"

var getUserByID = store.GetUserByID

func extractUserID(c echo.Context) (int, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token provided")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token provided")
	}
	claims, err := service.VerifyAccessToken(parts[1])
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "not authorized, token failed or expired")
	}
	return claims.UserID, nil
}

// RequireAuth verifies the bearer token and stashes the user id. No database
// lookup happens here: identity is trusted from the signature alone.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, err := extractUserID(c)
		if err != nil {
			return err
		}
		c.Set(ContextUserKey, userID)
		return next(c)
	}
}

// RequireAdmin resolves the token's user against the user store on every
// request and rejects non-admins. The live read means revoking the admin flag
// takes effect immediately, without waiting out token expiry.
func RequireAdmin(db database.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return RequireAuth(func(c echo.Context) error {
			userID, ok := c.Get(ContextUserKey).(int)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no user information")
			}
			user, err := getUserByID(c.Request().Context(), db, userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, token failed or user not found")
			}
			if !user.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "not authorized as an admin")
			}
			return next(c)
		})
	}
}
