package router

import (
	"github.com/labstack/echo/v4"

	"foodfinder/internal/adapter/api/handler"
	"foodfinder/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/locations", adminHandler.ListLocations)
}
