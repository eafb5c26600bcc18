package repository

import (
	"context"

	"foodfinder/internal/domain/entity"
)

type FavoriteRepository interface {
	IsFavorite(ctx context.Context, userID, locationID string) (bool, error)
	Add(ctx context.Context, userID, locationID string) error
	Remove(ctx context.Context, userID, locationID string) error
	ListByUser(ctx context.Context, userID string) ([]entity.Location, error)
}
