package usecase

import (
	"context"
	"fmt"
	"math"

	"foodfinder/internal/domain/entity"
	"foodfinder/internal/domain/repository"
	"foodfinder/internal/infrastructure/geo"
	"foodfinder/pkg/errors"
	"foodfinder/pkg/logger"
)

// Provider reviews kept per location on each refresh.
const topReviewCount = 5

type SearchUseCase struct {
	places       PlacesClient
	boundary     *geo.Boundary
	locationRepo repository.LocationRepository
}

func NewSearchUseCase(places PlacesClient, boundary *geo.Boundary, locationRepo repository.LocationRepository) *SearchUseCase {
	return &SearchUseCase{
		places:       places,
		boundary:     boundary,
		locationRepo: locationRepo,
	}
}

type SearchParams struct {
	BaseLocation string
	Name         string
	CuisineType  string
	MaxDistance  float64 // miles
	Limit        int
	MinRating    float64
}

type ReviewResult struct {
	Author string  `json:"author"`
	Rating float64 `json:"rating"`
	Text   string  `json:"text"`
	Time   string  `json:"time"`
}

type PlaceResult struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Address          string         `json:"address"`
	Latitude         float64        `json:"latitude"`
	Longitude        float64        `json:"longitude"`
	Category         string         `json:"category"`
	Rating           *float64       `json:"rating"`
	PriceLevel       *int           `json:"price_level"`
	Reviews          []ReviewResult `json:"reviews"`
	OpeningHours     []string       `json:"opening_hours,omitempty"`
	Website          string         `json:"website,omitempty"`
	PhoneNumber      string         `json:"phone_number,omitempty"`
	PhotoURL         *string        `json:"photo_url"`
	Types            []string       `json:"types"`
	DistanceFromBase float64        `json:"distance_from_base"` // miles
}

// Search resolves the base location, queries the places provider and walks
// candidates in provider order: boundary gate, distance gate, details
// fetch, rating gate. It stops as soon as limit results are accepted, so
// candidates past that point never cost a details call. Each accepted
// place is persisted before it is appended; any failure aborts the whole
// search rather than returning partial results.
func (uc *SearchUseCase) Search(ctx context.Context, params SearchParams) ([]PlaceResult, error) {
	results := []PlaceResult{}
	if params.Limit <= 0 {
		return results, nil
	}

	base, err := uc.places.Geocode(ctx, params.BaseLocation)
	if err != nil {
		return nil, errors.Internal("Failed to resolve base location", err)
	}
	if base == nil {
		return nil, errors.BadRequest("Unable to resolve base location", nil)
	}

	query := "restaurant"
	if params.Name != "" {
		query += " " + params.Name
	}
	if params.CuisineType != "" {
		query += " " + params.CuisineType
	}

	candidates, err := uc.places.SearchPlaces(ctx, query, base.Latitude, base.Longitude, geo.MilesToMeters(params.MaxDistance))
	if err != nil {
		return nil, errors.Internal("Failed to search places", err)
	}

	logger.Debug("search %q near %s returned %d candidates", query, params.BaseLocation, len(candidates))

	for _, candidate := range candidates {
		if !uc.boundary.Contains(candidate.Latitude, candidate.Longitude) {
			continue
		}

		distance := geo.DistanceMiles(base.Latitude, base.Longitude, candidate.Latitude, candidate.Longitude)
		if distance > params.MaxDistance {
			continue
		}

		detail, err := uc.places.PlaceDetails(ctx, candidate.PlaceID)
		if err != nil {
			return nil, errors.Internal("Failed to fetch place details", err)
		}

		// A place with no rating counts as 0, so it only survives a
		// zero threshold.
		rating := 0.0
		if detail.Rating != nil {
			rating = *detail.Rating
		}
		if rating < params.MinRating {
			continue
		}

		result := uc.buildResult(candidate, detail, distance)

		if err := uc.persist(ctx, candidate, detail, result); err != nil {
			return nil, err
		}

		results = append(results, result)
		if len(results) >= params.Limit {
			break
		}
	}

	return results, nil
}

func (uc *SearchUseCase) buildResult(candidate PlaceCandidate, detail *PlaceDetail, distance float64) PlaceResult {
	result := PlaceResult{
		ID:               candidate.PlaceID,
		Name:             detail.Name,
		Address:          detail.Address,
		Latitude:         candidate.Latitude,
		Longitude:        candidate.Longitude,
		Category:         firstType(candidate.Types),
		Rating:           detail.Rating,
		PriceLevel:       detail.PriceLevel,
		Reviews:          []ReviewResult{},
		OpeningHours:     detail.OpeningHours,
		Website:          detail.Website,
		PhoneNumber:      detail.PhoneNumber,
		Types:            candidate.Types,
		DistanceFromBase: math.Round(distance*100) / 100,
	}

	if detail.PhotoReference != "" {
		photoURL := uc.places.PhotoURL(detail.PhotoReference)
		result.PhotoURL = &photoURL
	}

	for _, review := range detail.Reviews {
		result.Reviews = append(result.Reviews, ReviewResult{
			Author: review.Author,
			Rating: review.Rating,
			Text:   review.Text,
			Time:   review.Time.Format("2006-01-02 15:04:05"),
		})
	}

	return result
}

func (uc *SearchUseCase) persist(ctx context.Context, candidate PlaceCandidate, detail *PlaceDetail, result PlaceResult) error {
	location := &entity.Location{
		ID:        candidate.PlaceID,
		Name:      detail.Name,
		Address:   detail.Address,
		Latitude:  candidate.Latitude,
		Longitude: candidate.Longitude,
		Category:  firstType(candidate.Types),
		Rating:    detail.Rating,
		PhotoURL:  result.PhotoURL,
	}

	if err := uc.locationRepo.Upsert(ctx, location); err != nil {
		return err
	}

	reviews := detail.Reviews
	if len(reviews) > topReviewCount {
		reviews = reviews[:topReviewCount]
	}

	for _, review := range reviews {
		stored := &entity.Review{
			Author:     review.Author,
			Title:      fmt.Sprintf("Review for %s", detail.Name),
			Content:    review.Text,
			Rating:     review.Rating,
			IsExternal: true,
			CreatedAt:  review.Time,
		}

		if err := uc.locationRepo.UpsertExternalReview(ctx, candidate.PlaceID, stored); err != nil {
			return err
		}
	}

	return nil
}

// GeocodeLocation resolves a free-text query scoped to Atlanta.
func (uc *SearchUseCase) GeocodeLocation(ctx context.Context, query string) (*GeocodeResult, error) {
	result, err := uc.places.Geocode(ctx, query+", Atlanta, GA")
	if err != nil {
		return nil, errors.Internal("Failed to geocode location", err)
	}
	if result == nil {
		return nil, errors.NotFound("Location", nil)
	}

	return result, nil
}

func firstType(types []string) string {
	if len(types) == 0 {
		return ""
	}
	return types[0]
}
