package googlemaps

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"foodfinder/internal/usecase"
)

const photoURLFormat = "https://maps.googleapis.com/maps/api/place/photo?maxwidth=400&photoreference=%s&key=%s"

// Client wraps the Google Maps Web Service client behind the
// usecase.PlacesClient interface. Calls are synchronous, unretried and
// uncached; provider failures surface to the caller as-is.
type Client struct {
	inner  *maps.Client
	apiKey string
}

func NewClient(apiKey string) (*Client, error) {
	inner, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}

	return &Client{
		inner:  inner,
		apiKey: apiKey,
	}, nil
}

func (c *Client) Geocode(ctx context.Context, address string) (*usecase.GeocodeResult, error) {
	results, err := c.inner.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}

	if len(results) == 0 {
		return nil, nil
	}

	return &usecase.GeocodeResult{
		Latitude:  results[0].Geometry.Location.Lat,
		Longitude: results[0].Geometry.Location.Lng,
		Address:   results[0].FormattedAddress,
	}, nil
}

func (c *Client) SearchPlaces(ctx context.Context, query string, lat, lng float64, radiusMeters uint) ([]usecase.PlaceCandidate, error) {
	resp, err := c.inner.TextSearch(ctx, &maps.TextSearchRequest{
		Query:    query,
		Location: &maps.LatLng{Lat: lat, Lng: lng},
		Radius:   radiusMeters,
	})
	if err != nil {
		return nil, fmt.Errorf("places text search failed: %w", err)
	}

	candidates := make([]usecase.PlaceCandidate, 0, len(resp.Results))
	for _, result := range resp.Results {
		candidates = append(candidates, usecase.PlaceCandidate{
			PlaceID:   result.PlaceID,
			Latitude:  result.Geometry.Location.Lat,
			Longitude: result.Geometry.Location.Lng,
			Types:     result.Types,
		})
	}

	return candidates, nil
}

func (c *Client) PlaceDetails(ctx context.Context, placeID string) (*usecase.PlaceDetail, error) {
	result, err := c.inner.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: placeID,
		Fields: []maps.PlaceDetailsFieldMask{
			maps.PlaceDetailsFieldMaskName,
			maps.PlaceDetailsFieldMaskFormattedAddress,
			maps.PlaceDetailsFieldMaskTypes,
			maps.PlaceDetailsFieldMaskRatings,
			maps.PlaceDetailsFieldMaskReviews,
			maps.PlaceDetailsFieldMaskPriceLevel,
			maps.PlaceDetailsFieldMaskOpeningHours,
			maps.PlaceDetailsFieldMaskWebsite,
			maps.PlaceDetailsFieldMaskFormattedPhoneNumber,
			maps.PlaceDetailsFieldMaskPhotos,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("place details request failed: %w", err)
	}

	detail := &usecase.PlaceDetail{
		Name:        result.Name,
		Address:     result.FormattedAddress,
		Website:     result.Website,
		PhoneNumber: result.FormattedPhoneNumber,
		Types:       result.Types,
	}

	// Google ratings run 1.0-5.0; a zero value means the place has no
	// rating at all.
	if result.Rating > 0 {
		rating := float64(result.Rating)
		detail.Rating = &rating
	}

	if result.PriceLevel > 0 {
		priceLevel := result.PriceLevel
		detail.PriceLevel = &priceLevel
	}

	if result.OpeningHours != nil {
		detail.OpeningHours = result.OpeningHours.WeekdayText
	}

	if len(result.Photos) > 0 {
		detail.PhotoReference = result.Photos[0].PhotoReference
	}

	for _, review := range result.Reviews {
		detail.Reviews = append(detail.Reviews, usecase.ExternalReview{
			Author: review.AuthorName,
			Rating: float64(review.Rating),
			Text:   review.Text,
			Time:   time.Unix(int64(review.Time), 0),
		})
	}

	return detail, nil
}

func (c *Client) PhotoURL(photoReference string) string {
	return fmt.Sprintf(photoURLFormat, photoReference, c.apiKey)
}
