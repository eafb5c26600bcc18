package repository

import (
	"context"

	"foodfinder/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error

	GetAdminByUserID(ctx context.Context, userID string) (*entity.Admin, error)
}
