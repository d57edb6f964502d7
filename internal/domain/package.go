// Package domain contains the travel booking model: activities, destinations,
// passengers and the travel package that aggregates them, plus the read
// models the reports are built from.
//
// The model is not safe for concurrent use. Callers that share it across
// goroutines (the service layer) must serialise access.
package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// TravelPackage aggregates destinations and a bounded list of passengers.
// The passenger count never exceeds the capacity.
type TravelPackage struct {
	ID   uuid.UUID
	Name string

	capacity     int
	destinations []*Destination
	passengers   []*Passenger
}

// NewTravelPackage returns an empty package accepting up to capacity passengers.
func NewTravelPackage(name string, capacity int) (*TravelPackage, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: package name is required", ErrValidation)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: passenger capacity must be positive", ErrValidation)
	}
	return &TravelPackage{ID: uuid.New(), Name: name, capacity: capacity}, nil
}

// Capacity returns the maximum number of passengers.
func (tp *TravelPackage) Capacity() int { return tp.capacity }

// Destinations returns the destinations in insertion order.
func (tp *TravelPackage) Destinations() []*Destination {
	out := make([]*Destination, len(tp.destinations))
	copy(out, tp.destinations)
	return out
}

// Passengers returns the enrolled passengers in enrolment order.
func (tp *TravelPackage) Passengers() []*Passenger {
	out := make([]*Passenger, len(tp.passengers))
	copy(out, tp.passengers)
	return out
}

// AddDestination appends d. There is no limit on destinations.
func (tp *TravelPackage) AddDestination(d *Destination) {
	tp.destinations = append(tp.destinations, d)
}

// AddPassenger enrols p unless the package is full, in which case p is
// dropped and OutcomePackageFull is returned.
func (tp *TravelPackage) AddPassenger(p *Passenger) Outcome {
	if len(tp.passengers) >= tp.capacity {
		return OutcomePackageFull
	}
	tp.passengers = append(tp.passengers, p)
	return OutcomeSuccess
}

// HasPassenger reports whether a passenger with the given number is enrolled.
func (tp *TravelPackage) HasPassenger(number int) bool {
	for _, p := range tp.passengers {
		if p.Number == number {
			return true
		}
	}
	return false
}

// Summary returns the package header used in listings.
func (tp *TravelPackage) Summary() PackageSummary {
	return PackageSummary{
		ID:           tp.ID,
		Name:         tp.Name,
		Capacity:     tp.capacity,
		Enrolled:     len(tp.passengers),
		Destinations: len(tp.destinations),
	}
}

// Itinerary lists every destination and its activities in insertion order.
func (tp *TravelPackage) Itinerary() Itinerary {
	it := Itinerary{
		PackageName:  tp.Name,
		Destinations: make([]DestinationSummary, 0, len(tp.destinations)),
	}
	for _, d := range tp.destinations {
		it.Destinations = append(it.Destinations, d.Summary())
	}
	return it
}

// PassengerList returns the package's capacity, enrolment count and roster.
func (tp *TravelPackage) PassengerList() PassengerList {
	pl := PassengerList{
		PackageName: tp.Name,
		Capacity:    tp.capacity,
		Enrolled:    len(tp.passengers),
		Passengers:  make([]PassengerSummary, 0, len(tp.passengers)),
	}
	for _, p := range tp.passengers {
		pl.Passengers = append(pl.Passengers, p.Summary())
	}
	return pl
}

// PassengerDetails describes p. It does not check that p is enrolled in tp.
func (tp *TravelPackage) PassengerDetails(p *Passenger) PassengerDetails {
	return p.Details()
}

// AvailableActivities lists activities that still have free places.
func (tp *TravelPackage) AvailableActivities() []AvailableActivity {
	out := []AvailableActivity{}
	for _, d := range tp.destinations {
		for _, a := range d.activities {
			if !a.HasSpace() {
				continue
			}
			out = append(out, AvailableActivity{
				Destination: d.Name,
				ActivityID:  a.ID,
				Activity:    a.Name,
				Remaining:   a.Remaining(),
			})
		}
	}
	return out
}

// Manifest flattens the roster to one row per passenger and joined activity.
// A passenger who joined nothing contributes one row with empty activity fields.
func (tp *TravelPackage) Manifest() []ManifestRow {
	out := []ManifestRow{}
	for _, p := range tp.passengers {
		base := ManifestRow{
			PackageName:     tp.Name,
			PassengerNumber: p.Number,
			PassengerName:   p.Name,
			Tier:            p.Tier,
		}
		if len(p.activities) == 0 {
			out = append(out, base)
			continue
		}
		for _, a := range p.activities {
			row := base
			row.ActivityName = a.Name
			row.ActivityCost = a.cost
			row.Destination = tp.destinationOf(a)
			out = append(out, row)
		}
	}
	return out
}

// destinationOf returns the name of the destination in tp that owns a,
// or "" if a belongs to another package.
func (tp *TravelPackage) destinationOf(a *Activity) string {
	for _, d := range tp.destinations {
		for _, da := range d.activities {
			if da == a {
				return d.Name
			}
		}
	}
	return ""
}
