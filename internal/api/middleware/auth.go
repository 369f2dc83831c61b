package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/blogforge/blog-api/internal/core/domain"
	"github.com/blogforge/blog-api/internal/core/ports"
)

// TokenVerifier is the slice of the token service the middleware needs.
type TokenVerifier interface {
	Verify(token string) (*ports.TokenClaims, error)
}

const identityKey = "identity"

// Auth requires a valid Bearer access token and injects the verified
// identity into the request context.
func Auth(tokens TokenVerifier) echo.MiddlewareFunc {
	return auth(tokens, true)
}

// AuthOptional lets anonymous requests through, but a request that does
// present a token must present a valid one: malformed or expired tokens are
// rejected, never downgraded to anonymous.
func AuthOptional(tokens TokenVerifier) echo.MiddlewareFunc {
	return auth(tokens, false)
}

func auth(tokens TokenVerifier, required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				if required {
					return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
				}
				return next(c)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil || claims.Type != ports.TokenTypeAccess {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			id := claims.Identity
			c.Set(identityKey, &id)

			return next(c)
		}
	}
}

// Identity returns the authenticated identity attached to the request, or
// nil when the caller is anonymous.
func Identity(c echo.Context) *domain.Identity {
	id, _ := c.Get(identityKey).(*domain.Identity)
	return id
}
