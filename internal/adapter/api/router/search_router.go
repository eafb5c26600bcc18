package router

import (
	"github.com/labstack/echo/v4"

	"foodfinder/internal/adapter/api/handler"
	"foodfinder/internal/adapter/api/middleware"
)

// SetupSearchRouter initializes the public search and geocode routes.
func SetupSearchRouter(e *echo.Echo) {
	searchHandler := handler.GetSearchHandler()

	e.GET("/v1/search", searchHandler.Search, middleware.SearchRateLimit())
	e.GET("/v1/locations/geocode", searchHandler.GeocodeLocation, middleware.SearchRateLimit())
}
