package router

import (
	"github.com/labstack/echo/v4"

	"foodfinder/internal/adapter/api/handler"
	"foodfinder/internal/adapter/api/middleware"
)

func SetupFavoriteRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	favoriteHandler := handler.GetFavoriteHandler()

	favorites := e.Group("/v1/favorites")
	favorites.Use(authMiddleware.Authenticate)

	favorites.POST("/toggle", favoriteHandler.ToggleFavorite)
	favorites.GET("", favoriteHandler.ListFavorites)
}
