package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"foodfinder/internal/usecase"
	"foodfinder/pkg/errors"
	"foodfinder/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

func (h *ReviewHandler) AddReview(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req struct {
		RestaurantID string  `json:"restaurant_id" validate:"required"`
		Rating       float64 `json:"rating" validate:"required,gte=1,lte=5"`
		Content      string  `json:"content" validate:"required"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.AddReview(c.Request().Context(), userID, usecase.AddReviewInput{
		RestaurantID: req.RestaurantID,
		Rating:       req.Rating,
		Content:      req.Content,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ReviewHandler) ListUserReviews(c echo.Context) error {
	userID := c.Get("uid").(string)

	reviews, err := h.reviewUseCase.ListUserReviews(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviews)
}

func (h *ReviewHandler) RemoveReview(c echo.Context) error {
	userID := c.Get("uid").(string)

	reviewID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return response.Error(c, errors.BadRequest("Review id must be an integer", err))
	}

	if err := h.reviewUseCase.RemoveReview(c.Request().Context(), userID, uint(reviewID)); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Review removed successfully",
	})
}
