package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"foodfinder/internal/domain/entity"
	"foodfinder/internal/domain/repository"
	apperrors "foodfinder/pkg/errors"
)

type gormReviewRepository struct {
	db *gorm.DB
}

func NewGormReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &gormReviewRepository{
		db: db,
	}
}

func (r *gormReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	review.CreatedAt = time.Now()

	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return apperrors.Internal("Failed to create review", err)
	}

	return nil
}

func (r *gormReviewRepository) GetByID(ctx context.Context, id uint) (*entity.Review, error) {
	var review entity.Review
	err := r.db.WithContext(ctx).First(&review, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Review", err)
		}
		return nil, apperrors.Internal("Failed to get review", err)
	}

	return &review, nil
}

func (r *gormReviewRepository) ListByAuthorID(ctx context.Context, authorID string) ([]*entity.Review, error) {
	var reviews []*entity.Review
	err := r.db.WithContext(ctx).
		Where("author_id = ? AND is_external = ?", authorID, false).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, apperrors.Internal("Failed to list reviews", err)
	}

	return reviews, nil
}

// DeleteOwned deletes in a single statement scoped to the author, so a
// non-owner gets the same not-found as a missing id and cannot probe for
// other users' review ids.
func (r *gormReviewRepository) DeleteOwned(ctx context.Context, id uint, authorID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND author_id = ? AND is_external = ?", id, authorID, false).
		Delete(&entity.Review{})
	if result.Error != nil {
		return apperrors.Internal("Failed to delete review", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NotFound("Review", nil)
	}

	return nil
}
