package repo

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/travel-package/internal/domain"
)

// Catalog is the in-memory registry of the booking model. The model itself
// is never persisted; Catalog only lets callers address packages,
// destinations, activities and passengers by identifier.
//
// Catalog is not safe for concurrent use. The service layer serialises access.
type Catalog struct {
	packages     map[uuid.UUID]*domain.TravelPackage
	packageOrder []uuid.UUID
	activities   map[uuid.UUID]activityEntry
	passengers   map[int]*domain.Passenger
}

// activityEntry remembers which package an activity was added under so ledger
// entries can be attributed to it.
type activityEntry struct {
	activity  *domain.Activity
	packageID uuid.UUID
}

// NewCatalog returns an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		packages:   make(map[uuid.UUID]*domain.TravelPackage),
		activities: make(map[uuid.UUID]activityEntry),
		passengers: make(map[int]*domain.Passenger),
	}
}

// AddPackage registers tp. Registering the same id twice returns domain.ErrConflict.
func (c *Catalog) AddPackage(tp *domain.TravelPackage) error {
	if _, ok := c.packages[tp.ID]; ok {
		return fmt.Errorf("repo.Catalog.AddPackage: %w", domain.ErrConflict)
	}
	c.packages[tp.ID] = tp
	c.packageOrder = append(c.packageOrder, tp.ID)
	return nil
}

// Package returns the package with the given id or domain.ErrNotFound.
func (c *Catalog) Package(id uuid.UUID) (*domain.TravelPackage, error) {
	tp, ok := c.packages[id]
	if !ok {
		return nil, fmt.Errorf("repo.Catalog.Package: %w", domain.ErrNotFound)
	}
	return tp, nil
}

// Packages returns every package in registration order.
func (c *Catalog) Packages() []*domain.TravelPackage {
	out := make([]*domain.TravelPackage, 0, len(c.packageOrder))
	for _, id := range c.packageOrder {
		out = append(out, c.packages[id])
	}
	return out
}

// AddDestination adds d to the package.
func (c *Catalog) AddDestination(packageID uuid.UUID, d *domain.Destination) error {
	tp, err := c.Package(packageID)
	if err != nil {
		return fmt.Errorf("repo.Catalog.AddDestination: %w", err)
	}
	tp.AddDestination(d)
	return nil
}

// Destination returns a destination of the given package or domain.ErrNotFound.
func (c *Catalog) Destination(packageID, destinationID uuid.UUID) (*domain.Destination, error) {
	tp, err := c.Package(packageID)
	if err != nil {
		return nil, fmt.Errorf("repo.Catalog.Destination: %w", err)
	}
	for _, d := range tp.Destinations() {
		if d.ID == destinationID {
			return d, nil
		}
	}
	return nil, fmt.Errorf("repo.Catalog.Destination: %w", domain.ErrNotFound)
}

// AddActivity adds a to the destination and indexes it under the package.
func (c *Catalog) AddActivity(packageID, destinationID uuid.UUID, a *domain.Activity) error {
	d, err := c.Destination(packageID, destinationID)
	if err != nil {
		return fmt.Errorf("repo.Catalog.AddActivity: %w", err)
	}
	d.AddActivity(a)
	c.activities[a.ID] = activityEntry{activity: a, packageID: packageID}
	return nil
}

// Activity returns the activity with the given id and the package it belongs
// to, or domain.ErrNotFound.
func (c *Catalog) Activity(id uuid.UUID) (*domain.Activity, uuid.UUID, error) {
	e, ok := c.activities[id]
	if !ok {
		return nil, uuid.Nil, fmt.Errorf("repo.Catalog.Activity: %w", domain.ErrNotFound)
	}
	return e.activity, e.packageID, nil
}

// AddPassenger registers p. Passenger numbers are unique; a duplicate
// returns domain.ErrConflict.
func (c *Catalog) AddPassenger(p *domain.Passenger) error {
	if _, ok := c.passengers[p.Number]; ok {
		return fmt.Errorf("repo.Catalog.AddPassenger: passenger %d: %w", p.Number, domain.ErrConflict)
	}
	c.passengers[p.Number] = p
	return nil
}

// Passenger returns the passenger with the given number or domain.ErrNotFound.
func (c *Catalog) Passenger(number int) (*domain.Passenger, error) {
	p, ok := c.passengers[number]
	if !ok {
		return nil, fmt.Errorf("repo.Catalog.Passenger: %w", domain.ErrNotFound)
	}
	return p, nil
}
