package repository

import (
	"context"

	"foodfinder/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id uint) (*entity.Review, error)
	ListByAuthorID(ctx context.Context, authorID string) ([]*entity.Review, error)

	// DeleteOwned removes a review only when authorID matches; a miss on
	// either id or ownership reports not found.
	DeleteOwned(ctx context.Context, id uint, authorID string) error
}
