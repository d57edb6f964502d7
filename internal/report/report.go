// Package report renders the booking model's read models as the
// label-prefixed text lines printed by the travel CLI and served by the
// API's text format.
package report

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/pkordes/travel-package/internal/domain"
)

// printer remembers the first write error so callers can check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

// Amount formats a money value with at least one decimal place:
// 50 → "50.0", 45 → "45.0", 12.25 → "12.25".
func Amount(d decimal.Decimal) string {
	if d.Equal(d.Truncate(1)) {
		return d.StringFixed(1)
	}
	return d.String()
}

// WriteItinerary prints every destination and its activities.
func WriteItinerary(w io.Writer, it domain.Itinerary) error {
	p := &printer{w: w}
	p.line("Travel Package: %s", it.PackageName)
	for _, d := range it.Destinations {
		p.line("Destination: %s", d.Name)
		for _, a := range d.Activities {
			p.line("Activity: %s, Cost: %s, Capacity: %d, Description: %s",
				a.Name, Amount(a.Cost), a.Capacity, a.Description)
		}
	}
	return p.err
}

// WritePassengerList prints the package capacity, enrolment count and roster.
func WritePassengerList(w io.Writer, pl domain.PassengerList) error {
	p := &printer{w: w}
	p.line("Travel Package: %s", pl.PackageName)
	p.line("Passenger Capacity: %d", pl.Capacity)
	p.line("Number of Passengers Enrolled: %d", pl.Enrolled)
	for _, ps := range pl.Passengers {
		p.line("Passenger: %s, Passenger Number: %d", ps.Name, ps.Number)
	}
	return p.err
}

// WritePassengerDetails prints one passenger. The balance line is omitted
// unless the balance is positive.
func WritePassengerDetails(w io.Writer, pd domain.PassengerDetails) error {
	p := &printer{w: w}
	p.line("Passenger Details:")
	p.line("Name: %s", pd.Name)
	p.line("Passenger Number: %d", pd.Number)
	if pd.ShowBalance {
		p.line("Balance: %s", Amount(pd.Balance))
	}
	p.line("Activities Booked:")
	for _, a := range pd.Activities {
		p.line("Activity: %s, Cost: %s", a.Name, Amount(a.Cost))
	}
	return p.err
}

// WriteAvailableActivities prints every activity with free places.
func WriteAvailableActivities(w io.Writer, available []domain.AvailableActivity) error {
	p := &printer{w: w}
	p.line("Available Activities:")
	for _, a := range available {
		p.line("Destination: %s, Activity: %s, Available Spaces: %d", a.Destination, a.Activity, a.Remaining)
	}
	return p.err
}

// SignUpMessage returns the notice printed for a refused sign-up, or "" when
// the passenger joined.
func SignUpMessage(outcome domain.Outcome, activity string) string {
	switch outcome {
	case domain.OutcomeCapacityReached:
		return fmt.Sprintf("Activity %s at capacity. Cannot sign up.", activity)
	case domain.OutcomeInsufficientBalance:
		return "Insufficient balance to sign up for activity: " + activity
	}
	return ""
}

// EnrolMessage returns the notice printed when a passenger could not be
// added to a package, or "" when they were.
func EnrolMessage(outcome domain.Outcome) string {
	if outcome == domain.OutcomePackageFull {
		return "Travel package is already full. Cannot add more passengers."
	}
	return ""
}

// WriteNotice prints msg on its own line unless it is empty.
func WriteNotice(w io.Writer, msg string) error {
	if msg == "" {
		return nil
	}
	p := &printer{w: w}
	p.line("%s", msg)
	return p.err
}
