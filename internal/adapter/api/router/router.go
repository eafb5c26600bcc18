package router

import (
	"github.com/labstack/echo/v4"

	"foodfinder/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupSearchRouter(e)
	SetupFavoriteRouter(e, authMiddleware)
	SetupReviewRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
