package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"foodfinder/internal/domain/repository"
	"foodfinder/internal/infrastructure/token"
)

type AuthMiddleware struct {
	tokens    *token.Manager
	tokenRepo repository.TokenRepository
}

func NewAuthMiddleware(tokens *token.Manager, tokenRepo repository.TokenRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:    tokens,
		tokenRepo: tokenRepo,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// Get the Authorization header
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		// Check if the Authorization header has the right format
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		claims, err := m.tokens.Verify(parts[1], token.TypeAccess)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		// Logged-out tokens stay blacklisted until they expire.
		revoked, err := m.tokenRepo.IsRevoked(c.Request().Context(), claims.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify token")
		}
		if revoked {
			return echo.NewHTTPError(http.StatusUnauthorized, "Token has been revoked")
		}

		c.Set("uid", claims.Subject)
		c.Set("username", claims.Username)

		return next(c)
	}
}
