package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"foodfinder/internal/usecase"
	"foodfinder/pkg/errors"
	"foodfinder/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	userID := c.Get("uid").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req struct {
		Bio       string `json:"bio" validate:"omitempty,max=500"`
		Location  string `json:"location" validate:"omitempty,max=100"`
		BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input := usecase.UpdateProfileInput{
		Bio:      req.Bio,
		Location: req.Location,
	}

	if req.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return response.Error(c, errors.BadRequest("birth_date must be YYYY-MM-DD", err))
		}
		input.BirthDate = &birthDate
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
