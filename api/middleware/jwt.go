package middleware

import (
	"net/http"
	"os"

	"github.com/ddiazp/LuckySevens/internal/player"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

func SetupJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(player.JwtCustomClaims)
		},
		SigningKey: []byte(os.Getenv("JWT_SECRET")),
	})
}

// CallerClaims pulls the validated claims the JWT middleware stored on
// the context, or nil when the request is unauthenticated.
func CallerClaims(c echo.Context) *player.JwtCustomClaims {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := token.Claims.(*player.JwtCustomClaims)
	if !ok {
		return nil
	}
	return claims
}

// CallerID returns the authenticated player's id.
func CallerID(c echo.Context) (uint, error) {
	claims := CallerClaims(c)
	if claims == nil {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token")
	}
	return claims.Id, nil
}

// RequireAdmin gates a route to callers holding the admin role. Only
// wired when PLAYERS_ADMIN_ONLY is enabled.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := CallerClaims(c)
		if claims == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token")
		}
		if claims.Role != player.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin role required")
		}
		return next(c)
	}
}
