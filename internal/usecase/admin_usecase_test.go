package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodfinder/internal/usecase"
)

func TestAdminListLocations(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	locationRepo := newLocationRepo(db)
	uc := usecase.NewAdminUseCase(locationRepo)

	for i := 0; i < 5; i++ {
		seedLocation(t, locationRepo, fmt.Sprintf("place-%d", i), fmt.Sprintf("Restaurant %d", i))
	}

	locations, total, err := uc.ListLocations(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, locations, 3)

	locations, total, err = uc.ListLocations(ctx, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, locations, 2)
}
