package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"foodfinder/internal/domain/repository"
	apperrors "foodfinder/pkg/errors"
)

type AdminMiddleware struct {
	userRepo repository.UserRepository
}

func NewAdminMiddleware(userRepo repository.UserRepository) *AdminMiddleware {
	return &AdminMiddleware{
		userRepo: userRepo,
	}
}

func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		if _, err := m.userRepo.GetAdminByUserID(c.Request().Context(), uid); err != nil {
			if apperrors.Is(err, "NOT_FOUND") {
				return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify admin privileges")
		}

		return next(c)
	}
}
