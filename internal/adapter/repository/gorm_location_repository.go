package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"foodfinder/internal/domain/entity"
	"foodfinder/internal/domain/repository"
	apperrors "foodfinder/pkg/errors"
)

type gormLocationRepository struct {
	db *gorm.DB
}

func NewGormLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &gormLocationRepository{
		db: db,
	}
}

func (r *gormLocationRepository) Upsert(ctx context.Context, location *entity.Location) error {
	now := time.Now()
	location.CreatedAt = now
	location.UpdatedAt = now

	err := r.db.WithContext(ctx).
		Omit("Reviews").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "address", "latitude", "longitude",
				"category", "rating", "photo_url", "updated_at",
			}),
		}).
		Create(location).Error
	if err != nil {
		return apperrors.Internal("Failed to upsert location", err)
	}

	return nil
}

func (r *gormLocationRepository) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	var location entity.Location
	err := r.db.WithContext(ctx).
		Preload("Reviews").
		First(&location, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Location", err)
		}
		return nil, apperrors.Internal("Failed to get location", err)
	}

	return &location, nil
}

func (r *gormLocationRepository) List(ctx context.Context, limit, offset int) ([]*entity.Location, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Location{}).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Internal("Failed to count locations", err)
	}

	var locations []*entity.Location
	err := r.db.WithContext(ctx).
		Order("name").
		Limit(limit).
		Offset(offset).
		Find(&locations).Error
	if err != nil {
		return nil, 0, apperrors.Internal("Failed to list locations", err)
	}

	return locations, total, nil
}

// UpsertExternalReview stores a provider review keyed on (author, content).
// A review with the same author and text from a later refresh updates the
// rating and title in place, which is the intended dedup behavior.
func (r *gormLocationRepository) UpsertExternalReview(ctx context.Context, locationID string, review *entity.Review) error {
	var existing entity.Review
	err := r.db.WithContext(ctx).
		Where("author = ? AND content = ? AND is_external = ?", review.Author, review.Content, true).
		First(&existing).Error

	switch {
	case err == nil:
		existing.Title = review.Title
		existing.Rating = review.Rating
		if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return apperrors.Internal("Failed to update external review", err)
		}
		*review = existing
	case errors.Is(err, gorm.ErrRecordNotFound):
		review.IsExternal = true
		if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
			return apperrors.Internal("Failed to create external review", err)
		}
	default:
		return apperrors.Internal("Failed to look up external review", err)
	}

	return r.AttachReview(ctx, locationID, review.ID)
}

func (r *gormLocationRepository) AttachReview(ctx context.Context, locationID string, reviewID uint) error {
	location := entity.Location{ID: locationID}
	review := entity.Review{ID: reviewID}

	err := r.db.WithContext(ctx).
		Model(&location).
		Omit("Reviews.*").
		Association("Reviews").
		Append(&review)
	if err != nil {
		return apperrors.Internal("Failed to attach review to location", err)
	}

	return nil
}
