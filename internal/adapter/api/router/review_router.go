package router

import (
	"github.com/labstack/echo/v4"

	"foodfinder/internal/adapter/api/handler"
	"foodfinder/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	reviews := e.Group("/v1/reviews")
	reviews.Use(authMiddleware.Authenticate)

	reviews.POST("", reviewHandler.AddReview)
	reviews.GET("", reviewHandler.ListUserReviews)
	reviews.DELETE("/:id", reviewHandler.RemoveReview)
}
