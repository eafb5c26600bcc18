package repository

import (
	"context"

	"foodfinder/internal/domain/entity"
)

type LocationRepository interface {
	// Upsert rewrites the location row keyed on its place id.
	Upsert(ctx context.Context, location *entity.Location) error
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Location, int64, error)

	// UpsertExternalReview stores a provider review keyed on
	// (author, content) and attaches it to the location.
	UpsertExternalReview(ctx context.Context, locationID string, review *entity.Review) error
	AttachReview(ctx context.Context, locationID string, reviewID uint) error
}
