package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// SeatPolicy decides what happens to a booked place when the passenger
// cannot pay for it.
type SeatPolicy int

const (
	// KeepSeatOnDecline leaves the place taken even though the passenger did
	// not join the activity. This is the historical behaviour.
	KeepSeatOnDecline SeatPolicy = iota
	// ReleaseSeatOnDecline gives the place back to the activity.
	ReleaseSeatOnDecline
)

// Passenger is a traveller with a tier, a balance that nothing replenishes,
// and the activities they joined. Joined activities are shared with the
// destination that owns them.
type Passenger struct {
	Number int
	Name   string
	Tier   Tier

	balance    decimal.Decimal
	activities []*Activity
}

// PassengerOption customises a Passenger at construction.
type PassengerOption func(*Passenger)

// WithBalance sets the opening balance. Passengers start at zero otherwise.
func WithBalance(b decimal.Decimal) PassengerOption {
	return func(p *Passenger) { p.balance = b }
}

// NewPassenger validates its arguments and returns a Passenger who has not
// joined any activity.
func NewPassenger(name string, number int, tier Tier, opts ...PassengerOption) (*Passenger, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: passenger name is required", ErrValidation)
	}
	if number <= 0 {
		return nil, fmt.Errorf("%w: passenger number must be positive", ErrValidation)
	}
	if !tier.Valid() {
		return nil, fmt.Errorf("%w: unknown passenger tier %q", ErrValidation, tier)
	}

	p := &Passenger{Number: number, Name: name, Tier: tier, balance: decimal.Zero}
	for _, opt := range opts {
		opt(p)
	}
	if p.balance.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance must not be negative", ErrValidation)
	}
	return p, nil
}

// Balance returns the passenger's remaining funds.
func (p *Passenger) Balance() decimal.Decimal { return p.balance }

// Activities returns the joined activities in sign-up order.
func (p *Passenger) Activities() []*Activity {
	out := make([]*Activity, len(p.activities))
	copy(out, p.activities)
	return out
}

// SignUpResult describes one sign-up attempt.
type SignUpResult struct {
	Outcome  Outcome
	Activity *Activity
	// Price is what the tier owed for the activity; zero for premium.
	Price decimal.Decimal
	// Charged is what was actually debited; zero unless Outcome is success.
	Charged decimal.Decimal
	// SeatHeld reports whether the attempt left a place booked on the activity.
	SeatHeld bool
}

// SignUpForActivity signs the passenger up for a with KeepSeatOnDecline.
func (p *Passenger) SignUpForActivity(a *Activity) SignUpResult {
	return p.SignUp(a, KeepSeatOnDecline)
}

// SignUp books a place on a, then charges the tier price against the balance.
//
// A full activity refuses before any payment logic runs. A passenger who
// cannot pay is not added to the activity; whether the booked place is kept
// is decided by policy. Tiers that do not charge always join.
func (p *Passenger) SignUp(a *Activity, policy SeatPolicy) SignUpResult {
	res := SignUpResult{Activity: a, Price: p.Tier.Price(a.Cost()), Charged: decimal.Zero}

	if !a.Book() {
		res.Outcome = OutcomeCapacityReached
		return res
	}
	res.SeatHeld = true

	if p.Tier.Charges() {
		if p.balance.LessThan(res.Price) {
			if policy == ReleaseSeatOnDecline {
				a.release()
				res.SeatHeld = false
			}
			res.Outcome = OutcomeInsufficientBalance
			return res
		}
		p.balance = p.balance.Sub(res.Price)
		res.Charged = res.Price
	}

	p.activities = append(p.activities, a)
	res.Outcome = OutcomeSuccess
	return res
}

// Summary returns the passenger's name and number.
func (p *Passenger) Summary() PassengerSummary {
	return PassengerSummary{Number: p.Number, Name: p.Name, Tier: p.Tier}
}

// Details returns the passenger's balance and joined activities.
// ShowBalance is set only for a positive balance.
func (p *Passenger) Details() PassengerDetails {
	pd := PassengerDetails{
		Number:      p.Number,
		Name:        p.Name,
		Tier:        p.Tier,
		Balance:     p.balance,
		ShowBalance: p.balance.IsPositive(),
		Activities:  make([]ActivityCharge, 0, len(p.activities)),
	}
	for _, a := range p.activities {
		pd.Activities = append(pd.Activities, ActivityCharge{ID: a.ID, Name: a.Name, Cost: a.cost})
	}
	return pd
}
