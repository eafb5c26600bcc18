package handler

import (
	"github.com/labstack/echo/v4"

	"foodfinder/internal/usecase"
	"foodfinder/pkg/response"
	"foodfinder/pkg/utils"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

func (h *AdminHandler) ListLocations(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	locations, total, err := h.adminUseCase.ListLocations(c.Request().Context(), pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, locations, total, pagination.Page, pagination.PageSize)
}
