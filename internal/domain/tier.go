package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Tier is the passenger category. It determines the price a passenger pays
// for an activity and whether the balance is checked at all.
type Tier string

const (
	TierStandard Tier = "standard"
	TierGold     Tier = "gold"
	TierPremium  Tier = "premium"
)

// pricing is the per-tier strategy applied by Passenger.SignUp.
// rate multiplies the activity cost; charges=false skips payment entirely.
type pricing struct {
	rate    decimal.Decimal
	charges bool
}

var tierPricing = map[Tier]pricing{
	TierStandard: {rate: decimal.NewFromInt(1), charges: true},
	TierGold:     {rate: decimal.RequireFromString("0.9"), charges: true},
	TierPremium:  {rate: decimal.Zero, charges: false},
}

// Tiers returns every tier in ascending order of privilege.
func Tiers() []Tier {
	return []Tier{TierStandard, TierGold, TierPremium}
}

// ParseTier accepts a tier name in any letter case.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown passenger tier %q", ErrValidation, s)
	}
	return t, nil
}

// Valid reports whether t is one of the three known tiers.
func (t Tier) Valid() bool {
	_, ok := tierPricing[t]
	return ok
}

// Charges reports whether passengers of this tier pay for activities.
func (t Tier) Charges() bool {
	return tierPricing[t].charges
}

// Price returns what a passenger of this tier owes for an activity costing cost.
// Premium passengers owe nothing.
func (t Tier) Price(cost decimal.Decimal) decimal.Decimal {
	p, ok := tierPricing[t]
	if !ok || !p.charges {
		return decimal.Zero
	}
	return cost.Mul(p.rate)
}
