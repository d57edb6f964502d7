package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The types in this file are value copies of model state. They are safe to
// hand out across goroutines and to encode; mutating them has no effect on
// the model.

// PackageSummary is the header of a travel package.
type PackageSummary struct {
	ID           uuid.UUID
	Name         string
	Capacity     int
	Enrolled     int
	Destinations int
}

// ActivitySummary is a snapshot of an activity.
type ActivitySummary struct {
	ID          uuid.UUID
	Name        string
	Description string
	Cost        decimal.Decimal
	Capacity    int
	Booked      int
}

// DestinationSummary is a destination with its activities in insertion order.
type DestinationSummary struct {
	ID         uuid.UUID
	Name       string
	Activities []ActivitySummary
}

// Itinerary is the read model behind the itinerary report.
type Itinerary struct {
	PackageName  string
	Destinations []DestinationSummary
}

// PassengerSummary identifies a passenger.
type PassengerSummary struct {
	Number int
	Name   string
	Tier   Tier
}

// PassengerList is the read model behind the passenger list report.
type PassengerList struct {
	PackageName string
	Capacity    int
	Enrolled    int
	Passengers  []PassengerSummary
}

// ActivityCharge is a joined activity as shown in passenger details.
// Cost is the list price, not what the passenger paid.
type ActivityCharge struct {
	ID   uuid.UUID
	Name string
	Cost decimal.Decimal
}

// PassengerDetails is the read model behind the passenger details report.
// ShowBalance is false when the balance is zero or negative.
type PassengerDetails struct {
	Number      int
	Name        string
	Tier        Tier
	Balance     decimal.Decimal
	ShowBalance bool
	Activities  []ActivityCharge
}

// AvailableActivity is an activity with free places.
type AvailableActivity struct {
	Destination string
	ActivityID  uuid.UUID
	Activity    string
	Remaining   int
}

// ManifestRow is one row of the flat package manifest.
type ManifestRow struct {
	PackageName     string
	PassengerNumber int
	PassengerName   string
	Tier            Tier

	// Activity fields are zero values when the passenger joined nothing.
	Destination  string
	ActivityName string
	ActivityCost decimal.Decimal
}

// SignUpReceipt is the service-level view of a SignUpResult.
type SignUpReceipt struct {
	PassengerNumber int
	ActivityID      uuid.UUID
	ActivityName    string
	Outcome         Outcome
	Price           decimal.Decimal
	Charged         decimal.Decimal
	Balance         decimal.Decimal
	SeatHeld        bool
}
