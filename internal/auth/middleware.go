package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"hopedeeds/internal/model"
)

// Middleware returns the bearer-token gate for protected route groups.
// It rejects missing, malformed and expired tokens with 401 and stores the
// parsed Claims for ClaimsFrom.
func Middleware(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
	})
}

// ClaimsFrom extracts the verified claims set by Middleware.
func ClaimsFrom(c echo.Context) (*Claims, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*Claims)
	return claims, ok
}

// RequireRole gates a route on the caller's role. The check is a pure
// membership test over the allowed set; unknown and inactive roles fail it.
func RequireRole(allowed ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}
			if !claims.Role.In(allowed...) {
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden: insufficient permissions")
			}
			return next(c)
		}
	}
}
