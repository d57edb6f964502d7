package handler

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pkordes/travel-package/internal/domain"
)

// ---- requests --------------------------------------------------------------

type createPackageRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Capacity int    `json:"capacity" validate:"gt=0"`
}

type createDestinationRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// Cost is a decimal so "12.30" round-trips exactly; its sign is checked by the model.
type createActivityRequest struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description" validate:"max=2000"`
	Cost        decimal.Decimal `json:"cost"`
	Capacity    int             `json:"capacity" validate:"gt=0"`
}

type registerPassengerRequest struct {
	Name    string           `json:"name" validate:"required,max=200"`
	Number  int              `json:"number" validate:"gt=0"`
	Tier    string           `json:"tier" validate:"required"`
	Balance *decimal.Decimal `json:"balance,omitempty"`
}

type enrollRequest struct {
	PassengerNumber int `json:"passenger_number" validate:"gt=0"`
}

type signUpRequest struct {
	ActivityID string `json:"activity_id" validate:"required,uuid"`
}

// ---- responses -------------------------------------------------------------

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

type packageResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Capacity         int       `json:"capacity"`
	Enrolled         int       `json:"enrolled"`
	DestinationCount int       `json:"destination_count"`
}

type activityResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
	Capacity    int             `json:"capacity"`
	Booked      int             `json:"booked"`
}

type destinationResponse struct {
	ID         uuid.UUID          `json:"id"`
	Name       string             `json:"name"`
	Activities []activityResponse `json:"activities"`
}

type itineraryResponse struct {
	PackageName  string                `json:"package_name"`
	Destinations []destinationResponse `json:"destinations"`
}

type passengerSummaryResponse struct {
	Number int         `json:"number"`
	Name   string      `json:"name"`
	Tier   domain.Tier `json:"tier"`
}

type passengerListResponse struct {
	PackageName string                     `json:"package_name"`
	Capacity    int                        `json:"capacity"`
	Enrolled    int                        `json:"enrolled"`
	Passengers  []passengerSummaryResponse `json:"passengers"`
}

type activityChargeResponse struct {
	ID   uuid.UUID       `json:"id"`
	Name string          `json:"name"`
	Cost decimal.Decimal `json:"cost"`
}

type passengerDetailsResponse struct {
	Number     int                      `json:"number"`
	Name       string                   `json:"name"`
	Tier       domain.Tier              `json:"tier"`
	Balance    decimal.Decimal          `json:"balance"`
	Activities []activityChargeResponse `json:"activities"`
}

type availableActivityResponse struct {
	Destination string    `json:"destination"`
	ActivityID  uuid.UUID `json:"activity_id"`
	Activity    string    `json:"activity"`
	Remaining   int       `json:"remaining"`
}

type manifestRowResponse struct {
	PackageName     string           `json:"package_name"`
	PassengerNumber int              `json:"passenger_number"`
	PassengerName   string           `json:"passenger_name"`
	Tier            domain.Tier      `json:"tier"`
	Destination     string           `json:"destination,omitempty"`
	ActivityName    string           `json:"activity_name,omitempty"`
	ActivityCost    *decimal.Decimal `json:"activity_cost,omitempty"`
}

type signUpResponse struct {
	PassengerNumber int             `json:"passenger_number"`
	ActivityID      uuid.UUID       `json:"activity_id"`
	ActivityName    string          `json:"activity_name"`
	Outcome         domain.Outcome  `json:"outcome"`
	Price           decimal.Decimal `json:"price"`
	Charged         decimal.Decimal `json:"charged"`
	Balance         decimal.Decimal `json:"balance"`
	SeatHeld        bool            `json:"seat_held"`
}

// signUpRefusal is the body of a refused sign-up: the usual error envelope
// plus the receipt, so callers can see whether a place was kept.
type signUpRefusal struct {
	Error   ErrorDetail    `json:"error"`
	Receipt signUpResponse `json:"receipt"`
}

// Pagination describes one page of a list response.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

type bookingPage struct {
	Data       []domain.Booking `json:"data"`
	Pagination Pagination       `json:"pagination"`
}

// ---- mapping helpers -------------------------------------------------------

func packageToResponse(p domain.PackageSummary) packageResponse {
	return packageResponse{
		ID:               p.ID,
		Name:             p.Name,
		Capacity:         p.Capacity,
		Enrolled:         p.Enrolled,
		DestinationCount: p.Destinations,
	}
}

func activityToResponse(a domain.ActivitySummary) activityResponse {
	return activityResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Cost:        a.Cost,
		Capacity:    a.Capacity,
		Booked:      a.Booked,
	}
}

func destinationToResponse(d domain.DestinationSummary) destinationResponse {
	resp := destinationResponse{ID: d.ID, Name: d.Name, Activities: make([]activityResponse, 0, len(d.Activities))}
	for _, a := range d.Activities {
		resp.Activities = append(resp.Activities, activityToResponse(a))
	}
	return resp
}

func itineraryToResponse(it domain.Itinerary) itineraryResponse {
	resp := itineraryResponse{PackageName: it.PackageName, Destinations: make([]destinationResponse, 0, len(it.Destinations))}
	for _, d := range it.Destinations {
		resp.Destinations = append(resp.Destinations, destinationToResponse(d))
	}
	return resp
}

func passengerListToResponse(pl domain.PassengerList) passengerListResponse {
	resp := passengerListResponse{
		PackageName: pl.PackageName,
		Capacity:    pl.Capacity,
		Enrolled:    pl.Enrolled,
		Passengers:  make([]passengerSummaryResponse, 0, len(pl.Passengers)),
	}
	for _, p := range pl.Passengers {
		resp.Passengers = append(resp.Passengers, passengerSummaryResponse{Number: p.Number, Name: p.Name, Tier: p.Tier})
	}
	return resp
}

// passengerDetailsToResponse always includes the balance; hiding a
// non-positive balance is a text report convention only.
func passengerDetailsToResponse(pd domain.PassengerDetails) passengerDetailsResponse {
	resp := passengerDetailsResponse{
		Number:     pd.Number,
		Name:       pd.Name,
		Tier:       pd.Tier,
		Balance:    pd.Balance,
		Activities: make([]activityChargeResponse, 0, len(pd.Activities)),
	}
	for _, a := range pd.Activities {
		resp.Activities = append(resp.Activities, activityChargeResponse{ID: a.ID, Name: a.Name, Cost: a.Cost})
	}
	return resp
}

func availabilityToResponse(in []domain.AvailableActivity) []availableActivityResponse {
	out := make([]availableActivityResponse, 0, len(in))
	for _, a := range in {
		out = append(out, availableActivityResponse{
			Destination: a.Destination,
			ActivityID:  a.ActivityID,
			Activity:    a.Activity,
			Remaining:   a.Remaining,
		})
	}
	return out
}

func manifestRowToResponse(r domain.ManifestRow) manifestRowResponse {
	resp := manifestRowResponse{
		PackageName:     r.PackageName,
		PassengerNumber: r.PassengerNumber,
		PassengerName:   r.PassengerName,
		Tier:            r.Tier,
		Destination:     r.Destination,
		ActivityName:    r.ActivityName,
	}
	if r.ActivityName != "" {
		cost := r.ActivityCost
		resp.ActivityCost = &cost
	}
	return resp
}

func receiptToResponse(rc domain.SignUpReceipt) signUpResponse {
	return signUpResponse{
		PassengerNumber: rc.PassengerNumber,
		ActivityID:      rc.ActivityID,
		ActivityName:    rc.ActivityName,
		Outcome:         rc.Outcome,
		Price:           rc.Price,
		Charged:         rc.Charged,
		Balance:         rc.Balance,
		SeatHeld:        rc.SeatHeld,
	}
}
