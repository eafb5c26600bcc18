package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"foodfinder/internal/domain/entity"
	"foodfinder/internal/domain/repository"
	apperrors "foodfinder/pkg/errors"
)

type gormFavoriteRepository struct {
	db *gorm.DB
}

func NewGormFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &gormFavoriteRepository{
		db: db,
	}
}

func (r *gormFavoriteRepository) IsFavorite(ctx context.Context, userID, locationID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("user_favorites").
		Where("user_id = ? AND location_id = ?", userID, locationID).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Internal("Failed to check favorite", err)
	}

	return count > 0, nil
}

func (r *gormFavoriteRepository) Add(ctx context.Context, userID, locationID string) error {
	user := entity.User{ID: userID}
	location := entity.Location{ID: locationID}

	err := r.db.WithContext(ctx).
		Model(&user).
		Omit("Favorites.*").
		Association("Favorites").
		Append(&location)
	if err != nil {
		return apperrors.Internal("Failed to add favorite", err)
	}

	return nil
}

func (r *gormFavoriteRepository) Remove(ctx context.Context, userID, locationID string) error {
	user := entity.User{ID: userID}
	location := entity.Location{ID: locationID}

	err := r.db.WithContext(ctx).
		Model(&user).
		Association("Favorites").
		Delete(&location)
	if err != nil {
		return apperrors.Internal("Failed to remove favorite", err)
	}

	return nil
}

func (r *gormFavoriteRepository) ListByUser(ctx context.Context, userID string) ([]entity.Location, error) {
	var user entity.User
	err := r.db.WithContext(ctx).
		Preload("Favorites.Reviews").
		First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User", err)
		}
		return nil, apperrors.Internal("Failed to list favorites", err)
	}

	return user.Favorites, nil
}
