package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"foodfinder/internal/usecase"
	"foodfinder/pkg/errors"
	"foodfinder/pkg/response"
)

type SearchHandler struct {
	searchUseCase *usecase.SearchUseCase
}

func NewSearchHandler(searchUseCase *usecase.SearchUseCase) *SearchHandler {
	return &SearchHandler{
		searchUseCase: searchUseCase,
	}
}

// Search handles GET /v1/search. All parameters arrive as query strings;
// defaults match the historical behavior of the service.
func (h *SearchHandler) Search(c echo.Context) error {
	params := usecase.SearchParams{
		BaseLocation: "Georgia Tech",
		Name:         c.QueryParam("name"),
		CuisineType:  c.QueryParam("cuisine_type"),
		MaxDistance:  10,
		Limit:        20,
		MinRating:    0,
	}

	if base := c.QueryParam("base_location"); base != "" {
		params.BaseLocation = base
	}

	if raw := c.QueryParam("max_distance"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.Error(c, errors.BadRequest("max_distance must be a number", err))
		}
		params.MaxDistance = value
	}

	if raw := c.QueryParam("limit"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return response.Error(c, errors.BadRequest("limit must be an integer", err))
		}
		params.Limit = value
	}

	if raw := c.QueryParam("min_rating"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.Error(c, errors.BadRequest("min_rating must be a number", err))
		}
		params.MinRating = value
	}

	results, err := h.searchUseCase.Search(c.Request().Context(), params)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, results)
}

func (h *SearchHandler) GeocodeLocation(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return response.Error(c, errors.BadRequest("Query parameter is required", nil))
	}

	result, err := h.searchUseCase.GeocodeLocation(c.Request().Context(), query)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"latitude":  result.Latitude,
		"longitude": result.Longitude,
		"address":   result.Address,
	})
}
