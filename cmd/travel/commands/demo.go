package commands

import (
	"io"

	"github.com/shopspring/decimal"

	"github.com/pkordes/travel-package/internal/domain"
	"github.com/pkordes/travel-package/internal/report"
)

// runDemo plays the Beach Vacation scenario against the model directly:
// a gold passenger with no money tries to join Snorkeling before being
// enrolled, then the itinerary, roster and passenger details are printed.
// The refused sign-up still holds its place on the activity.
func runDemo(w io.Writer, showAvailable bool) error {
	snorkeling, err := domain.NewActivity("Snorkeling", "Enjoy snorkeling in clear waters", decimal.RequireFromString("50.0"), 20)
	if err != nil {
		return err
	}
	beach, err := domain.NewDestination("Beach")
	if err != nil {
		return err
	}
	beach.AddActivity(snorkeling)

	john, err := domain.NewPassenger("John", 1, domain.TierGold)
	if err != nil {
		return err
	}
	res := john.SignUpForActivity(snorkeling)
	if err := report.WriteNotice(w, report.SignUpMessage(res.Outcome, snorkeling.Name)); err != nil {
		return err
	}

	beachPackage, err := domain.NewTravelPackage("Beach Vacation", 50)
	if err != nil {
		return err
	}
	beachPackage.AddDestination(beach)
	if err := report.WriteNotice(w, report.EnrolMessage(beachPackage.AddPassenger(john))); err != nil {
		return err
	}

	if err := report.WriteItinerary(w, beachPackage.Itinerary()); err != nil {
		return err
	}
	if err := report.WritePassengerList(w, beachPackage.PassengerList()); err != nil {
		return err
	}
	if err := report.WritePassengerDetails(w, beachPackage.PassengerDetails(john)); err != nil {
		return err
	}
	if showAvailable {
		return report.WriteAvailableActivities(w, beachPackage.AvailableActivities())
	}
	return nil
}
