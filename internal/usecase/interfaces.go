package usecase

import (
	"context"
	"time"
)

// PlaceCandidate is a raw text-search hit, cheap enough to filter before
// spending a details call on it.
type PlaceCandidate struct {
	PlaceID   string
	Latitude  float64
	Longitude float64
	Types     []string
}

type ExternalReview struct {
	Author string
	Rating float64
	Text   string
	Time   time.Time
}

type PlaceDetail struct {
	Name           string
	Address        string
	Rating         *float64
	PriceLevel     *int
	Reviews        []ExternalReview
	OpeningHours   []string
	Website        string
	PhoneNumber    string
	PhotoReference string
	Types          []string
}

type GeocodeResult struct {
	Latitude  float64
	Longitude float64
	Address   string
}

type PlacesClient interface {
	// Geocode resolves a free-text address. A nil result with a nil error
	// means the provider could not resolve the address.
	Geocode(ctx context.Context, address string) (*GeocodeResult, error)
	SearchPlaces(ctx context.Context, query string, lat, lng float64, radiusMeters uint) ([]PlaceCandidate, error)
	PlaceDetails(ctx context.Context, placeID string) (*PlaceDetail, error)
	PhotoURL(photoReference string) string
}
