package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"foodfinder/internal/domain/entity"
	"foodfinder/internal/domain/repository"
	apperrors "foodfinder/pkg/errors"

	"github.com/google/uuid"
)

type gormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) repository.UserRepository {
	return &gormUserRepository{
		db: db,
	}
}

func (r *gormUserRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return apperrors.Internal("Failed to create user", err)
	}

	return nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User", err)
		}
		return nil, apperrors.Internal("Failed to get user", err)
	}

	return &user, nil
}

func (r *gormUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User", err)
		}
		return nil, apperrors.Internal("Failed to get user", err)
	}

	return &user, nil
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User", err)
		}
		return nil, apperrors.Internal("Failed to get user", err)
	}

	return &user, nil
}

func (r *gormUserRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", username, email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User", err)
		}
		return nil, apperrors.Internal("Failed to get user", err)
	}

	return &user, nil
}

func (r *gormUserRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()

	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return apperrors.Internal("Failed to update user", err)
	}

	return nil
}

func (r *gormUserRepository) GetAdminByUserID(ctx context.Context, userID string) (*entity.Admin, error) {
	var admin entity.Admin
	err := r.db.WithContext(ctx).First(&admin, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Admin", err)
		}
		return nil, apperrors.Internal("Failed to get admin", err)
	}

	return &admin, nil
}
