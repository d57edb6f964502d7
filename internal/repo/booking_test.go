package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-package/internal/domain"
	"github.com/pkordes/travel-package/internal/repo"
	"github.com/pkordes/travel-package/testutil"
)

// newTestRepo opens a transaction against the test database and returns a
// BookingRepo backed by it. The transaction is rolled back when the test
// finishes, giving per-test isolation.
func newTestRepo(t *testing.T) repo.BookingRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return repo.NewBookingRepo(tx)
}

// bookingFixture returns a successful gold sign-up. Callers override fields.
func bookingFixture(packageID uuid.UUID) domain.Booking {
	return domain.Booking{
		PackageID:       packageID,
		PassengerNumber: 1,
		ActivityID:      uuid.New(),
		ActivityName:    "Snorkeling",
		Tier:            domain.TierGold,
		Outcome:         domain.OutcomeSuccess,
		Charged:         decimal.RequireFromString("45.00"),
	}
}

func TestBookingRepo_Create(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	input := bookingFixture(uuid.New())
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID, "ID should be DB-generated")
	assert.Equal(t, input.PackageID, got.PackageID)
	assert.Equal(t, input.ActivityID, got.ActivityID)
	assert.Equal(t, "Snorkeling", got.ActivityName)
	assert.Equal(t, domain.TierGold, got.Tier)
	assert.Equal(t, domain.OutcomeSuccess, got.Outcome)
	assert.True(t, got.Charged.Equal(input.Charged), "charged %s", got.Charged)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
}

func TestBookingRepo_Create_Declined(t *testing.T) {
	r := newTestRepo(t)

	input := bookingFixture(uuid.New())
	input.Outcome = domain.OutcomeInsufficientBalance
	input.Charged = decimal.Zero

	got, err := r.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeInsufficientBalance, got.Outcome)
	assert.True(t, got.Charged.IsZero())
}

func TestBookingRepo_ListByPackage_NewestFirstAndPaged(t *testing.T) {
	r := newTestRepo(t)
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

	page = 2
	got, _, err = r.ListByPackage(ctx, pkg, domain.NewPaginationParams(&page, &limit))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "First", got[0].ActivityName)
}

func TestBookingRepo_ListByPassenger(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	pkg := uuid.New()

	first := bookingFixture(pkg)
	first.PassengerNumber = 42
	first.ActivityName = "Early"
	second := first
	second.ActivityName = "Late"
	other := bookingFixture(pkg)
	other.PassengerNumber = 43

	for _, b := range []domain.Booking{first, second, other} {
		_, err := r.Create(ctx, b)
		require.NoError(t, err)
	}

	got, err := r.ListByPassenger(ctx, 42)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Early", got[0].ActivityName)
	assert.Equal(t, "Late", got[1].ActivityName)
}

func TestBookingRepo_ListByPassenger_Empty(t *testing.T) {
	r := newTestRepo(t)

	got, err := r.ListByPassenger(context.Background(), 999)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
