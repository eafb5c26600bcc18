package usecase

import (
	"context"

	"foodfinder/internal/domain/entity"
	"foodfinder/internal/domain/repository"
	"foodfinder/pkg/logger"
)

type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	locationRepo repository.LocationRepository
}

func NewFavoriteUseCase(favoriteRepo repository.FavoriteRepository, locationRepo repository.LocationRepository) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		locationRepo: locationRepo,
	}
}

const (
	FavoriteAdded   = "added"
	FavoriteRemoved = "removed"
)

// Toggle flips the location's membership in the user's favorites and
// reports which way it went.
func (uc *FavoriteUseCase) Toggle(ctx context.Context, userID, locationID string) (string, error) {
	if _, err := uc.locationRepo.GetByID(ctx, locationID); err != nil {
		return "", err
	}

	isFavorite, err := uc.favoriteRepo.IsFavorite(ctx, userID, locationID)
	if err != nil {
		return "", err
	}

	if isFavorite {
		if err := uc.favoriteRepo.Remove(ctx, userID, locationID); err != nil {
			return "", err
		}
		logger.Debug("user %s removed favorite %s", userID, locationID)
		return FavoriteRemoved, nil
	}

	if err := uc.favoriteRepo.Add(ctx, userID, locationID); err != nil {
		return "", err
	}
	logger.Debug("user %s added favorite %s", userID, locationID)
	return FavoriteAdded, nil
}

func (uc *FavoriteUseCase) List(ctx context.Context, userID string) ([]entity.Location, error) {
	return uc.favoriteRepo.ListByUser(ctx, userID)
}
