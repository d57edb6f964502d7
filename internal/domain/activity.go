package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Activity is a bookable unit offered at a destination.
// Cost and capacity are fixed at construction; booked only moves through
// Book and the seat release of ReleaseSeatOnDecline, and never exceeds capacity.
type Activity struct {
	ID          uuid.UUID
	Name        string
	Description string

	cost     decimal.Decimal
	capacity int
	booked   int
}

// NewActivity validates its arguments and returns an Activity with no bookings.
func NewActivity(name, description string, cost decimal.Decimal, capacity int) (*Activity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: activity name is required", ErrValidation)
	}
	if cost.IsNegative() {
		return nil, fmt.Errorf("%w: activity cost must not be negative", ErrValidation)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: activity capacity must be positive", ErrValidation)
	}
	return &Activity{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		cost:        cost,
		capacity:    capacity,
	}, nil
}

// Cost returns the undiscounted price of the activity.
func (a *Activity) Cost() decimal.Decimal { return a.cost }

// Capacity returns the maximum number of bookings.
func (a *Activity) Capacity() int { return a.capacity }

// Booked returns the number of places taken.
func (a *Activity) Booked() int { return a.booked }

// Remaining returns the number of free places.
func (a *Activity) Remaining() int { return a.capacity - a.booked }

// HasSpace reports whether at least one place is free.
func (a *Activity) HasSpace() bool { return a.booked < a.capacity }

// Book takes one place if one is free. It reports false, leaving the
// activity untouched, when the activity is at capacity.
func (a *Activity) Book() bool {
	if !a.HasSpace() {
		return false
	}
	a.booked++
	return true
}

// release gives back a place taken by Book.
func (a *Activity) release() {
	if a.booked > 0 {
		a.booked--
	}
}

// Summary returns a read-only copy of the activity's state.
func (a *Activity) Summary() ActivitySummary {
	return ActivitySummary{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Cost:        a.cost,
		Capacity:    a.capacity,
		Booked:      a.booked,
	}
}
