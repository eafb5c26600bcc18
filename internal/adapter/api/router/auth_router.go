package router

import (
	"github.com/labstack/echo/v4"

	"foodfinder/internal/adapter/api/handler"
	"foodfinder/internal/adapter/api/middleware"
)

// SetupAuthRouter initializes auth routes
func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	// Public routes
	auth := e.Group("/v1/auth", middleware.AuthRateLimit())
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/register-or-login", authHandler.RegisterOrLogin)
	auth.POST("/check-user", authHandler.CheckUserExists)
	auth.POST("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("/logout", authHandler.Logout)
}
