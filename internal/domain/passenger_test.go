package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-package/internal/domain"
)

// ---- helpers ---------------------------------------------------------------

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func snorkeling(t *testing.T) *domain.Activity {
	t.Helper()
	a, err := domain.NewActivity("Snorkeling", "Enjoy snorkeling in clear waters", dec("50.0"), 20)
	require.NoError(t, err)
	return a
}

func passenger(t *testing.T, tier domain.Tier, balance string) *domain.Passenger {
	t.Helper()
	p, err := domain.NewPassenger("John", 1, tier, domain.WithBalance(dec(balance)))
	require.NoError(t, err)
	return p
}

// ---- construction ----------------------------------------------------------

func TestNewPassenger_DefaultsToZeroBalance(t *testing.T) {
	p, err := domain.NewPassenger("John", 1, domain.TierGold)

	require.NoError(t, err)
	assert.True(t, p.Balance().IsZero())
	assert.Empty(t, p.Activities())
}

func TestNewPassenger_Validation(t *testing.T) {
	cases := []struct {
		name   string
		pname  string
		number int
		tier   domain.Tier
		opts   []domain.PassengerOption
	}{
		{"blank name", "  ", 1, domain.TierStandard, nil},
		{"zero number", "Ann", 0, domain.TierStandard, nil},
		{"unknown tier", "Ann", 1, domain.Tier("platinum"), nil},
		{"negative balance", "Ann", 1, domain.TierStandard, []domain.PassengerOption{domain.WithBalance(dec("-1"))}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := domain.NewPassenger(tc.pname, tc.number, tc.tier, tc.opts...)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

// ---- standard --------------------------------------------------------------

func TestSignUp_Standard_DebitsFullCost(t *testing.T) {
	a := snorkeling(t)
	p := passenger(t, domain.TierStandard, "80")

	res := p.SignUpForActivity(a)

	assert.Equal(t, domain.OutcomeSuccess, res.Outcome)
	assert.True(t, res.Charged.Equal(dec("50")), "charged %s", res.Charged)
	assert.True(t, p.Balance().Equal(dec("30")), "balance %s", p.Balance())
	assert.Equal(t, []*domain.Activity{a}, p.Activities())
	assert.Equal(t, 1, a.Booked())
}

func TestSignUp_Standard_ExactBalanceIsEnough(t *testing.T) {
	a := snorkeling(t)
	p := passenger(t, domain.TierStandard, "50")

	res := p.SignUpForActivity(a)

	assert.Equal(t, domain.OutcomeSuccess, res.Outcome)
	assert.True(t, p.Balance().IsZero())
}

func TestSignUp_Standard_InsufficientBalanceKeepsSeat(t *testing.T) {
	a := snorkeling(t)
	p := passenger(t, domain.TierStandard, "49.99")

	res := p.SignUpForActivity(a)

	assert.Equal(t, domain.OutcomeInsufficientBalance, res.Outcome)
	assert.ErrorIs(t, res.Outcome.Err(), domain.ErrInsufficientBalance)
	assert.True(t, p.Balance().Equal(dec("49.99")))
	assert.Empty(t, p.Activities())
	// The place stays taken even though the passenger did not join.
	assert.Equal(t, 1, a.Booked())
	assert.True(t, res.SeatHeld)
	assert.True(t, res.Charged.IsZero())
}

// ---- gold ------------------------------------------------------------------

func TestSignUp_Gold_DebitsDiscountedCost(t *testing.T) {
	a := snorkeling(t)
	p := passenger(t, domain.TierGold, "45")

	res := p.SignUpForActivity(a)

	assert.Equal(t, domain.OutcomeSuccess, res.Outcome)
	assert.True(t, res.Charged.Equal(dec("45")), "charged %s", res.Charged)
	assert.True(t, p.Balance().IsZero(), "balance %s", p.Balance())
	assert.Len(t, p.Activities(), 1)
}

// Gold passenger with zero balance: the decline is reported, the place is
// taken and nothing is joined.
func TestSignUp_Gold_ZeroBalanceScenario(t *testing.T) {
	a := snorkeling(t)
	p := passenger(t, domain.TierGold, "0")

	res := p.SignUpForActivity(a)

	assert.Equal(t, domain.OutcomeInsufficientBalance, res.Outcome)
	assert.True(t, res.Price.Equal(dec("45")), "price %s", res.Price)
	assert.Equal(t, 1, a.Booked())
	assert.Empty(t, p.Activities())
	assert.True(t, p.Balance().IsZero())
}

// ---- premium ---------------------------------------------------------------

func TestSignUp_Premium_ZeroBalanceScenario(t *testing.T) {
	a := snorkeling(t)
	p := passenger(t, domain.TierPremium, "0")

	res := p.SignUpForActivity(a)

	assert.Equal(t, domain.OutcomeSuccess, res.Outcome)
	assert.Equal(t, []*domain.Activity{a}, p.Activities())
	assert.True(t, p.Balance().IsZero())
	assert.True(t, res.Charged.IsZero())
	assert.Equal(t, 1, a.Booked())
}

func TestSignUp_Premium_NeverChangesBalance(t *testing.T) {
	p := passenger(t, domain.TierPremium, "12.5")

	for i := 0; i < 3; i++ {
		res := p.SignUpForActivity(snorkeling(t))
		require.Equal(t, domain.OutcomeSuccess, res.Outcome)
	}

	assert.True(t, p.Balance().Equal(dec("12.5")))
	assert.Len(t, p.Activities(), 3)
}

// ---- capacity --------------------------------------------------------------

func TestSignUp_FullActivity_RefusesBeforePayment(t *testing.T) {
	for _, tier := range domain.Tiers() {
		t.Run(string(tier), func(t *testing.T) {
			a, err := domain.NewActivity("Kayak", "", dec("10"), 1)
			require.NoError(t, err)
			first := passenger(t, domain.TierPremium, "0")
			require.Equal(t, domain.OutcomeSuccess, first.SignUpForActivity(a).Outcome)

			second := passenger(t, tier, "100")
			res := second.SignUpForActivity(a)

			assert.Equal(t, domain.OutcomeCapacityReached, res.Outcome)
			assert.False(t, res.SeatHeld)
			assert.True(t, second.Balance().Equal(dec("100")), "no payment may run")
			assert.Empty(t, second.Activities())
			assert.Equal(t, 1, a.Booked())
		})
	}
}

func TestSignUp_BookedNeverExceedsCapacity(t *testing.T) {
	a, err := domain.NewActivity("Dive", "", dec("5"), 3)
	require.NoError(t, err)

	tiers := domain.Tiers()
	for i := 0; i < 20; i++ {
		p := passenger(t, tiers[i%len(tiers)], "7")
		p.SignUpForActivity(a)
		require.LessOrEqual(t, a.Booked(), a.Capacity())
	}
	assert.Equal(t, 3, a.Booked())
	assert.Equal(t, 0, a.Remaining())
}

// ---- seat policy -----------------------------------------------------------

func TestSignUp_ReleaseSeatOnDecline(t *testing.T) {
	a := snorkeling(t)
	p := passenger(t, domain.TierStandard, "0")

	res := p.SignUp(a, domain.ReleaseSeatOnDecline)

	assert.Equal(t, domain.OutcomeInsufficientBalance, res.Outcome)
	assert.False(t, res.SeatHeld)
	assert.Equal(t, 0, a.Booked())
}

func TestSignUp_ReleaseSeatOnDecline_SuccessKeepsSeat(t *testing.T) {
	a := snorkeling(t)
	p := passenger(t, domain.TierGold, "100")

	res := p.SignUp(a, domain.ReleaseSeatOnDecline)

	assert.Equal(t, domain.OutcomeSuccess, res.Outcome)
	assert.True(t, res.SeatHeld)
	assert.Equal(t, 1, a.Booked())
	assert.True(t, p.Balance().Equal(dec("55")))
}
