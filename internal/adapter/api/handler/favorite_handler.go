package handler

import (
	"github.com/labstack/echo/v4"

	"foodfinder/internal/usecase"
	"foodfinder/pkg/errors"
	"foodfinder/pkg/response"
)

type FavoriteHandler struct {
	favoriteUseCase *usecase.FavoriteUseCase
}

func NewFavoriteHandler(favoriteUseCase *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
	}
}

func (h *FavoriteHandler) ToggleFavorite(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req struct {
		RestaurantID string `json:"restaurant_id" validate:"required"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	action, err := h.favoriteUseCase.Toggle(c.Request().Context(), userID, req.RestaurantID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"restaurant_id": req.RestaurantID,
		"action":        action,
	})
}

func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID := c.Get("uid").(string)

	favorites, err := h.favoriteUseCase.List(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, favorites)
}
