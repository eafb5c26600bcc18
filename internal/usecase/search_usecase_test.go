package usecase_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodfinder/internal/domain/entity"
	"foodfinder/internal/infrastructure/geo"
	"foodfinder/internal/usecase"
	"foodfinder/pkg/errors"
)

// Downtown Atlanta, inside the boundary.
var downtownBase = &usecase.GeocodeResult{
	Latitude:  33.7490,
	Longitude: -84.3880,
	Address:   "Downtown, Atlanta, GA",
}

func candidate(id string, lat, lng float64) usecase.PlaceCandidate {
	return usecase.PlaceCandidate{
		PlaceID:   id,
		Latitude:  lat,
		Longitude: lng,
		Types:     []string{"restaurant", "food"},
	}
}

func detail(name string, rating *float64) *usecase.PlaceDetail {
	return &usecase.PlaceDetail{
		Name:    name,
		Address: "123 Peachtree St NE, Atlanta, GA",
		Rating:  rating,
	}
}

func defaultParams() usecase.SearchParams {
	return usecase.SearchParams{
		BaseLocation: "Georgia Tech",
		MaxDistance:  10,
		Limit:        20,
		MinRating:    0,
	}
}

func TestSearchZeroLimitReturnsEmpty(t *testing.T) {
	places := &fakePlacesClient{geocodeResult: downtownBase}
	db := newTestDB(t)
	uc := usecase.NewSearchUseCase(places, geo.AtlantaBoundary(), newLocationRepo(db))

	params := defaultParams()
	params.Limit = 0

	results, err := uc.Search(context.Background(), params)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, places.detailCalls)
}

func TestSearchUnresolvedBaseLocation(t *testing.T) {
	places := &fakePlacesClient{geocodeResult: nil}
	db := newTestDB(t)
	uc := usecase.NewSearchUseCase(places, geo.AtlantaBoundary(), newLocationRepo(db))

	_, err := uc.Search(context.Background(), defaultParams())
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSearchExcludesPlacesOutsideBoundary(t *testing.T) {
	places := &fakePlacesClient{
		geocodeResult: downtownBase,
		candidates: []usecase.PlaceCandidate{
			candidate("marietta-1", 33.9526, -84.5499), // outside Atlanta
			candidate("midtown-1", 33.7839, -84.3830),
		},
		details: map[string]*usecase.PlaceDetail{
			"midtown-1": detail("Midtown Grill", ratingPtr(4.5)),
		},
	}
	db := newTestDB(t)
	uc := usecase.NewSearchUseCase(places, geo.AtlantaBoundary(), newLocationRepo(db))

	results, err := uc.Search(context.Background(), defaultParams())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "midtown-1", results[0].ID)

	// The out-of-boundary candidate never costs a details call.
	assert.Equal(t, 1, places.detailCalls)
}

func TestSearchExcludesPlacesBeyondMaxDistance(t *testing.T) {
	places := &fakePlacesClient{
		geocodeResult: downtownBase,
		candidates: []usecase.PlaceCandidate{
			candidate("georgia-tech-1", 33.7756, -84.3963), // ~2 miles from downtown
			candidate("next-door-1", 33.7491, -84.3881),
		},
		details: map[string]*usecase.PlaceDetail{
			"next-door-1": detail("Next Door Diner", ratingPtr(4.0)),
		},
	}
	db := newTestDB(t)
	uc := usecase.NewSearchUseCase(places, geo.AtlantaBoundary(), newLocationRepo(db))

	params := defaultParams()
	params.MaxDistance = 1

	results, err := uc.Search(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "next-door-1", results[0].ID)
	assert.LessOrEqual(t, results[0].DistanceFromBase, params.MaxDistance)
	assert.Equal(t, 1, places.detailCalls)
}

func TestSearchMinRatingFilter(t *testing.T) {
	places := &fakePlacesClient{
		geocodeResult: downtownBase,
		candidates: []usecase.PlaceCandidate{
			candidate("low-1", 33.7490, -84.3880),
			candidate("unrated-1", 33.7500, -84.3890),
			candidate("high-1", 33.7510, -84.3900),
		},
		details: map[string]*usecase.PlaceDetail{
			"low-1":     detail("Low Bar", ratingPtr(3.0)),
			"unrated-1": detail("New Spot", nil),
			"high-1":    detail("High Table", ratingPtr(4.7)),
		},
	}
	db := newTestDB(t)
	uc := usecase.NewSearchUseCase(places, geo.AtlantaBoundary(), newLocationRepo(db))

	params := defaultParams()
	params.MinRating = 4.0

	results, err := uc.Search(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "high-1", results[0].ID)
}

func TestSearchZeroMinRatingKeepsUnratedPlaces(t *testing.T) {
	places := &fakePlacesClient{
		geocodeResult: downtownBase,
		candidates: []usecase.PlaceCandidate{
			candidate("unrated-1", 33.7500, -84.3890),
		},
		details: map[string]*usecase.PlaceDetail{
			"unrated-1": detail("New Spot", nil),
		},
	}
	db := newTestDB(t)
	uc := usecase.NewSearchUseCase(places, geo.AtlantaBoundary(), newLocationRepo(db))

	results, err := uc.Search(context.Background(), defaultParams())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Nil(t, results[0].Rating)
}

func TestSearchStopsAtLimit(t *testing.T) {
	places := &fakePlacesClient{
		geocodeResult: downtownBase,
		candidates: []usecase.PlaceCandidate{
			candidate("a-1", 33.7490, -84.3880),
			candidate("b-1", 33.7500, -84.3890),
			candidate("c-1", 33.7510, -84.3900),
		},
		details: map[string]*usecase.PlaceDetail{
			"a-1": detail("Alpha", ratingPtr(4.0)),
			"b-1": detail("Bravo", ratingPtr(4.1)),
			"c-1": detail("Charlie", ratingPtr(4.2)),
		},
	}
	db := newTestDB(t)
	uc := usecase.NewSearchUseCase(places, geo.AtlantaBoundary(), newLocationRepo(db))

	params := defaultParams()
	params.Limit = 2

	results, err := uc.Search(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "a-1", results[0].ID)
	assert.Equal(t, "b-1", results[1].ID)

	// Provider order is preserved and the third candidate is never fetched.
	assert.Equal(t, 2, places.detailCalls)
}

func TestSearchPersistsAndUpserts(t *testing.T) {
	reviewTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	placeDetail := detail("Busy Bee Cafe", ratingPtr(4.4))
	placeDetail.PhotoReference = "photo-ref-1"
	placeDetail.Reviews = []usecase.ExternalReview{
		{Author: "alice", Rating: 5, Text: "Great fried chicken", Time: reviewTime},
		{Author: "bob", Rating: 4, Text: "Long wait, worth it", Time: reviewTime},
	}

	places := &fakePlacesClient{
		geocodeResult: downtownBase,
		candidates: []usecase.PlaceCandidate{
			candidate("busy-bee-1", 33.7490, -84.3880),
		},
		details: map[string]*usecase.PlaceDetail{
			"busy-bee-1": placeDetail,
		},
	}
	db := newTestDB(t)
	locationRepo := newLocationRepo(db)
	uc := usecase.NewSearchUseCase(places, geo.AtlantaBoundary(), locationRepo)

	_, err := uc.Search(context.Background(), defaultParams())
	require.NoError(t, err)

	// Same search again: one location row, reviews deduplicated.
	placeDetail.Rating = ratingPtr(4.6)
	_, err = uc.Search(context.Background(), defaultParams())
	require.NoError(t, err)

	var locationCount int64
	require.NoError(t, db.Model(&entity.Location{}).Count(&locationCount).Error)
	assert.Equal(t, int64(1), locationCount)

	var reviewCount int64
	require.NoError(t, db.Model(&entity.Review{}).Count(&reviewCount).Error)
	assert.Equal(t, int64(2), reviewCount)

	stored, err := locationRepo.GetByID(context.Background(), "busy-bee-1")
	require.NoError(t, err)
	require.NotNil(t, stored.Rating)
	assert.Equal(t, 4.6, *stored.Rating)
	require.NotNil(t, stored.PhotoURL)
	assert.Equal(t, "https://photos.example/photo-ref-1", *stored.PhotoURL)
	assert.Len(t, stored.Reviews, 2)
}

func TestSearchDistanceRounding(t *testing.T) {
	places := &fakePlacesClient{
		geocodeResult: downtownBase,
		candidates: []usecase.PlaceCandidate{
			candidate("georgia-tech-1", 33.7756, -84.3963),
		},
		details: map[string]*usecase.PlaceDetail{
			"georgia-tech-1": detail("Tech Square Tavern", ratingPtr(4.2)),
		},
	}
	db := newTestDB(t)
	uc := usecase.NewSearchUseCase(places, geo.AtlantaBoundary(), newLocationRepo(db))

	results, err := uc.Search(context.Background(), defaultParams())
	require.NoError(t, err)
	require.Len(t, results, 1)

	// Rounded to two decimals.
	got := results[0].DistanceFromBase
	assert.InDelta(t, got*100, math.Round(got*100), 1e-9)
	assert.Greater(t, got, 1.0)
	assert.Less(t, got, 3.0)
}

func TestGeocodeLocation(t *testing.T) {
	places := &fakePlacesClient{geocodeResult: downtownBase}
	db := newTestDB(t)
	uc := usecase.NewSearchUseCase(places, geo.AtlantaBoundary(), newLocationRepo(db))

	result, err := uc.GeocodeLocation(context.Background(), "Ponce City Market")
	require.NoError(t, err)
	assert.Equal(t, downtownBase.Latitude, result.Latitude)
}

func TestGeocodeLocationNotFound(t *testing.T) {
	places := &fakePlacesClient{geocodeResult: nil}
	db := newTestDB(t)
	uc := usecase.NewSearchUseCase(places, geo.AtlantaBoundary(), newLocationRepo(db))

	_, err := uc.GeocodeLocation(context.Background(), "nowhere at all")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
