package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"eventadmin/internal/model"
)

// API middleware: unlike the page gate, JSON endpoints answer plain 401s
// instead of redirecting, matching what API clients expect.

// SessionMiddleware turns the token parsed by echo-jwt into a Session.
// Revoked tokens and unparsable subjects are rejected the same way as a
// missing token.
func SessionMiddleware(sessions SessionStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}
			claims, ok := token.Claims.(*Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}
			userID, ok := claims.UserID()
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}
			if revoked, _ := sessions.IsRevoked(c.Request().Context(), claims.ID); revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			c.Set(sessionContextKey, &Session{
				UserID:  userID,
				Email:   claims.Email,
				TokenID: claims.ID,
			})
			return next(c)
		}
	}
}

// RequireRolesAPI denies the request with 401 unless the caller holds one of
// the required roles. GlobalAdmin always qualifies. Roles are re-read from
// the store on every request.
func RequireRolesAPI(roles RoleReader, required ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := SessionFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}
			userRoles, err := roles.RolesForUser(c.Request().Context(), sess.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
			}
			want := append([]model.Role{model.RoleGlobalAdmin}, required...)
			if !RoleSatisfied(userRoles, want) {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}
			return next(c)
		}
	}
}
