package usecase

import (
	"context"
	"fmt"

	"foodfinder/internal/domain/entity"
	"foodfinder/internal/domain/repository"
)

type ReviewUseCase struct {
	reviewRepo   repository.ReviewRepository
	locationRepo repository.LocationRepository
	userRepo     repository.UserRepository
}

func NewReviewUseCase(reviewRepo repository.ReviewRepository, locationRepo repository.LocationRepository, userRepo repository.UserRepository) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:   reviewRepo,
		locationRepo: locationRepo,
		userRepo:     userRepo,
	}
}

type AddReviewInput struct {
	RestaurantID string
	Rating       float64
	Content      string
}

// AddReview attributes the review to the calling user; authorship is a
// foreign key, so renaming the account later does not orphan the review.
func (uc *ReviewUseCase) AddReview(ctx context.Context, userID string, input AddReviewInput) (*entity.Review, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	location, err := uc.locationRepo.GetByID(ctx, input.RestaurantID)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		Author:     user.Username,
		AuthorID:   &user.ID,
		Title:      fmt.Sprintf("Review for %s", location.Name),
		Content:    input.Content,
		Rating:     input.Rating,
		IsExternal: false,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	if err := uc.locationRepo.AttachReview(ctx, location.ID, review.ID); err != nil {
		return nil, err
	}

	return review, nil
}

func (uc *ReviewUseCase) ListUserReviews(ctx context.Context, userID string) ([]*entity.Review, error) {
	return uc.reviewRepo.ListByAuthorID(ctx, userID)
}

// RemoveReview deletes the caller's own review. Someone else's review and
// a nonexistent id are both reported as not found.
func (uc *ReviewUseCase) RemoveReview(ctx context.Context, userID string, reviewID uint) error {
	return uc.reviewRepo.DeleteOwned(ctx, reviewID, userID)
}
