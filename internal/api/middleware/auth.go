package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ddcrdc/content-api/internal/core/domain"
	"github.com/ddcrdc/content-api/internal/core/ports"
)

// Auth validates the bearer token and injects the principal into context.
// Every failure — missing header, wrong scheme, bad signature, expired
// payload — yields the same domain.ErrUnauthorized so nothing about the
// failing check leaks to the client.
func Auth(tokens ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return domain.ErrUnauthorized
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return domain.ErrUnauthorized
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return domain.ErrUnauthorized
			}

			c.Set("user_id", claims.UserID)
			c.Set("username", claims.Username)

			return next(c)
		}
	}
}
