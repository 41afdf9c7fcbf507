package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	UserEmailKey contextKey = "user_email"
	UserRoleKey  contextKey = "user_role"
)

// Middleware authenticates requests with either HTTP Basic credentials
// checked against the user store or a bearer token issued at login.
func Middleware(users UserRepository, issuer *TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
			}

			switch {
			case strings.EqualFold(parts[0], "bearer"):
				claims, err := issuer.Parse(parts[1])
				if err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				setIdentity(c, claims.Subject, claims.Email, claims.Role)
				return next(c)

			case strings.EqualFold(parts[0], "basic"):
				email, password, ok := c.Request().BasicAuth()
				if !ok {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
				}
				u, err := users.GetByEmail(c.Request().Context(), email)
				if err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
				}
				if err := u.CheckPassword(password); err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
				}
				setIdentity(c, u.ID.String(), u.Email, u.Role)
				return next(c)

			default:
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
			}
		}
	}
}

func setIdentity(c echo.Context, userID, email, role string) {
	c.Set("user_id", userID)
	ctx := c.Request().Context()
	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, UserEmailKey, email)
	ctx = context.WithValue(ctx, UserRoleKey, role)
	c.SetRequest(c.Request().WithContext(ctx))
}

func UserIDFromContext(ctx context.Context) string {
	uid, _ := ctx.Value(UserIDKey).(string)
	return uid
}

func RoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(UserRoleKey).(string)
	return role
}
