package usecase

import (
	"context"
	"time"

	"foodfinder/internal/domain/entity"
	"foodfinder/internal/domain/repository"
	"foodfinder/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

type UpdateProfileInput struct {
	Bio       string
	Location  string
	BirthDate *time.Time
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	return user, nil
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	// Update fields if provided
	if input.Bio != "" {
		user.Bio = input.Bio
	}
	if input.Location != "" {
		user.Location = input.Location
	}
	if input.BirthDate != nil {
		user.BirthDate = input.BirthDate
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
