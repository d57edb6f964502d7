package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-package/internal/domain"
	"github.com/pkordes/travel-package/internal/repo"
)

func TestMemoryBookingRepo_Create(t *testing.T) {
	r := repo.NewMemoryBookingRepo()

	got, err := r.Create(context.Background(), bookingFixture(uuid.New()))

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestMemoryBookingRepo_ListByPackage(t *testing.T) {
	r := repo.NewMemoryBookingRepo()
	ctx := context.Background()
	pkg := uuid.New()

	for _, name := range []string{"First", "Second", "Third"} {
		b := bookingFixture(pkg)
		b.ActivityName = name
		_, err := r.Create(ctx, b)
		require.NoError(t, err)
	}
	_, err := r.Create(ctx, bookingFixture(uuid.New()))
	require.NoError(t, err)

	page, limit := 1, 2
	got, total, err := r.ListByPackage(ctx, pkg, domain.NewPaginationParams(&page, &limit))

	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, got, 2)
	assert.Equal(t, "Third", got[0].ActivityName)
	assert.Equal(t, "Second", got[1].ActivityName)

	page = 5
	got, total, err = r.ListByPackage(ctx, pkg, domain.NewPaginationParams(&page, &limit))
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Empty(t, got)
}

func TestMemoryBookingRepo_ListByPassenger(t *testing.T) {
	r := repo.NewMemoryBookingRepo()
	ctx := context.Background()

	b := bookingFixture(uuid.New())
	b.PassengerNumber = 7
	_, err := r.Create(ctx, b)
	require.NoError(t, err)

	got, err := r.ListByPassenger(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	none, err := r.ListByPassenger(ctx, 8)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
