package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Destination is a named place in a travel package. It owns its activities,
// kept in insertion order for display. Activities are never removed.
type Destination struct {
	ID   uuid.UUID
	Name string

	activities []*Activity
}

// NewDestination returns an empty Destination.
func NewDestination(name string) (*Destination, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: destination name is required", ErrValidation)
	}
	return &Destination{ID: uuid.New(), Name: name}, nil
}

// AddActivity appends a to the destination.
func (d *Destination) AddActivity(a *Activity) {
	d.activities = append(d.activities, a)
}

// Activities returns the destination's activities in insertion order.
// The slice is a copy; the activities are shared.
func (d *Destination) Activities() []*Activity {
	out := make([]*Activity, len(d.activities))
	copy(out, d.activities)
	return out
}

// Summary returns a read-only copy of the destination and its activities.
func (d *Destination) Summary() DestinationSummary {
	s := DestinationSummary{
		ID:         d.ID,
		Name:       d.Name,
		Activities: make([]ActivitySummary, 0, len(d.activities)),
	}
	for _, a := range d.activities {
		s.Activities = append(s.Activities, a.Summary())
	}
	return s
}
