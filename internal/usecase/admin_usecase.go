package usecase

import (
	"context"

	"foodfinder/internal/domain/entity"
	"foodfinder/internal/domain/repository"
)

type AdminUseCase struct {
	locationRepo repository.LocationRepository
}

func NewAdminUseCase(locationRepo repository.LocationRepository) *AdminUseCase {
	return &AdminUseCase{
		locationRepo: locationRepo,
	}
}

// ListLocations pages through every stored location for back-office use.
func (uc *AdminUseCase) ListLocations(ctx context.Context, page, pageSize int) ([]*entity.Location, int64, error) {
	offset := (page - 1) * pageSize
	return uc.locationRepo.List(ctx, pageSize, offset)
}
