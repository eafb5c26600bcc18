package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"foodfinder/internal/adapter/api/handler"
)

func TestHealthCheck(t *testing.T) {
	// Setup
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	healthHandler := handler.GetHealthHandler()

	// Assertions
	if assert.NoError(t, healthHandler.CheckHealth(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "running")
	}
}

func TestSearchRejectsBadLimit(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/search?limit=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// The handler rejects the bad parameter before touching the use case.
	searchHandler := handler.NewSearchHandler(nil)

	if assert.NoError(t, searchHandler.Search(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "BAD_REQUEST")
	}
}

func TestSearchRejectsBadMaxDistance(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/search?max_distance=far", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	searchHandler := handler.NewSearchHandler(nil)

	if assert.NoError(t, searchHandler.Search(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "max_distance")
	}
}

func TestGeocodeRequiresQuery(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/locations/geocode", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	searchHandler := handler.NewSearchHandler(nil)

	if assert.NoError(t, searchHandler.GeocodeLocation(c)) {
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}
