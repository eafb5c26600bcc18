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

type gormTokenRepository struct {
	db *gorm.DB
}

func NewGormTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &gormTokenRepository{
		db: db,
	}
}

func (r *gormTokenRepository) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	revoked := entity.RevokedToken{
		JTI:       jti,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}

	// Revoking twice is a no-op.
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&revoked).Error
	if err != nil {
		return apperrors.Internal("Failed to revoke token", err)
	}

	return nil
}

func (r *gormTokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var revoked entity.RevokedToken
	err := r.db.WithContext(ctx).First(&revoked, "jti = ?", jti).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, apperrors.Internal("Failed to check token revocation", err)
	}

	return true, nil
}
