package middleware

import (
	"net/http"
	"strings"

	"github.com/hotelio/frontdesk/internal/service"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

type AuthMiddleware struct {
	auth service.AuthService
}

func NewAuthMiddleware(auth service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate validates the bearer token and stores the resolved actor on
// the request context. Cashier permissions are loaded fresh per request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}
		claims, err := m.auth.ParseToken(token)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		actor, err := m.auth.ActorFromClaims(c.Request().Context(), claims)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		c.Set(actorContextKey, actor)
		return next(c)
	}
}

func (m *AuthMiddleware) RequireOperator(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !ActorFrom(c).IsOperator() {
			return echo.NewHTTPError(http.StatusForbidden, "operator role required")
		}
		return next(c)
	}
}

// ActorFrom returns the actor placed by Authenticate. The zero Actor is
// returned on unauthenticated routes.
func ActorFrom(c echo.Context) service.Actor {
	actor, _ := c.Get(actorContextKey).(service.Actor)
	return actor
}
