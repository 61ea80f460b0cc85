package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	repository "flowdesk.com/flowdesk/internal/repositories"
	"flowdesk.com/flowdesk/internal/services"
)

// Authenticate resolves the bearer token to a user and attaches it to
// the request context. Everything behind it can rely on CurrentUser
// being non-nil.
func Authenticate(auth *services.AuthService, users *repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authorization header missing")
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")
			if tokenStr == header {
				return echo.NewHTTPError(http.StatusUnauthorized, "bearer token required")
			}

			userID, err := auth.ParseToken(tokenStr)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ContextUser, user)
			return next(c)
		}
	}
}
