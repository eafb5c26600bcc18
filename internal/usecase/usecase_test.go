package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	gormrepo "foodfinder/internal/adapter/repository"
	"foodfinder/internal/domain/entity"
	"foodfinder/internal/domain/repository"
	"foodfinder/internal/usecase"
)

// newTestDB opens a uniquely named shared in-memory database so every
// connection in GORM's pool sees the same data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Admin{},
		&entity.Location{},
		&entity.Review{},
		&entity.RevokedToken{},
	))

	return db
}

func seedUser(t *testing.T, repo repository.UserRepository, username string) *entity.User {
	t.Helper()

	user := &entity.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func seedLocation(t *testing.T, repo repository.LocationRepository, id, name string) *entity.Location {
	t.Helper()

	location := &entity.Location{
		ID:        id,
		Name:      name,
		Address:   "123 Peachtree St NE, Atlanta, GA",
		Latitude:  33.7490,
		Longitude: -84.3880,
		Category:  "restaurant",
	}
	require.NoError(t, repo.Upsert(context.Background(), location))
	return location
}

func newLocationRepo(db *gorm.DB) repository.LocationRepository {
	return gormrepo.NewGormLocationRepository(db)
}

// fakePlacesClient is a canned places provider. detailCalls counts how
// many details lookups the search actually spent.
type fakePlacesClient struct {
	geocodeResult *usecase.GeocodeResult
	geocodeErr    error
	candidates    []usecase.PlaceCandidate
	details       map[string]*usecase.PlaceDetail
	detailCalls   int
}

func (f *fakePlacesClient) Geocode(ctx context.Context, address string) (*usecase.GeocodeResult, error) {
	if f.geocodeErr != nil {
		return nil, f.geocodeErr
	}
	return f.geocodeResult, nil
}

func (f *fakePlacesClient) SearchPlaces(ctx context.Context, query string, lat, lng float64, radiusMeters uint) ([]usecase.PlaceCandidate, error) {
	return f.candidates, nil
}

func (f *fakePlacesClient) PlaceDetails(ctx context.Context, placeID string) (*usecase.PlaceDetail, error) {
	f.detailCalls++
	detail, ok := f.details[placeID]
	if !ok {
		return nil, fmt.Errorf("no detail for place %s", placeID)
	}
	return detail, nil
}

func (f *fakePlacesClient) PhotoURL(photoReference string) string {
	return "https://photos.example/" + photoReference
}

func ratingPtr(v float64) *float64 {
	return &v
}
