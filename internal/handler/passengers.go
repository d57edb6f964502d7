package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/pkordes/travel-package/internal/domain"
	"github.com/pkordes/travel-package/internal/report"
	"github.com/pkordes/travel-package/internal/service"
)

// RegisterPassenger handles POST /passengers.
func (s *Server) RegisterPassenger(w http.ResponseWriter, r *http.Request) {
	var body registerPassengerRequest
	if !decodeBody(w, r, &body) {
		return
	}
	tier, err := domain.ParseTier(body.Tier)
	if err != nil {
		s.fail(w, r, err, "")
		return
	}
	balance := decimal.Zero
	if body.Balance != nil {
		balance = *body.Balance
	}

	created, err := s.bookings.RegisterPassenger(r.Context(), service.PassengerInput{
		Name:    body.Name,
		Number:  body.Number,
		Tier:    tier,
		Balance: balance,
	})
	if err != nil {
		s.fail(w, r, err, "")
		return
	}
	writeJSON(w, r, http.StatusCreated, passengerDetailsToResponse(created))
}

// GetPassenger handles GET /passengers/{number}.
func (s *Server) GetPassenger(w http.ResponseWriter, r *http.Request) {
	number, err := pathInt(r, "number")
	if err != nil {
		badParam(w, r, err)
		return
	}

	pd, err := s.bookings.GetPassenger(r.Context(), number)
	if err != nil {
		s.fail(w, r, err, fmt.Sprintf("passenger %d not found", number))
		return
	}
	writeJSON(w, r, http.StatusOK, passengerDetailsToResponse(pd))
}

// ListPassengerBookings handles GET /passengers/{number}/bookings.
func (s *Server) ListPassengerBookings(w http.ResponseWriter, r *http.Request) {
	number, err := pathInt(r, "number")
	if err != nil {
		badParam(w, r, err)
		return
	}

	bookings, err := s.bookings.PassengerBookings(r.Context(), number)
	if err != nil {
		s.fail(w, r, err, fmt.Sprintf("passenger %d not found", number))
		return
	}
	writeJSON(w, r, http.StatusOK, bookings)
}

// EnrollPassenger handles POST /packages/{id}/passengers.
// A full package answers 409 package_full; a repeat enrolment 409 conflict.
func (s *Server) EnrollPassenger(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		badParam(w, r, err)
		return
	}
	var body enrollRequest
	if !decodeBody(w, r, &body) {
		return
	}

	summary, err := s.bookings.Enroll(r.Context(), id, body.PassengerNumber)
	if err != nil {
		s.fail(w, r, err, "travel package or passenger not found")
		return
	}
	writeJSON(w, r, http.StatusCreated, packageToResponse(summary))
}

// GetPassengerList handles GET /packages/{id}/passengers.
func (s *Server) GetPassengerList(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		badParam(w, r, err)
		return
	}
	format, err := queryFormat(r, "json", "text")
	if err != nil {
		badParam(w, r, err)
		return
	}

	pl, err := s.bookings.PassengerList(r.Context(), id)
	if err != nil {
		s.fail(w, r, err, "travel package not found")
		return
	}
	if format == "text" {
		s.writeText(w, r, func(out io.Writer) error { return report.WritePassengerList(out, pl) })
		return
	}
	writeJSON(w, r, http.StatusOK, passengerListToResponse(pl))
}

// GetPassengerDetails handles GET /packages/{id}/passengers/{number}.
func (s *Server) GetPassengerDetails(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		badParam(w, r, err)
		return
	}
	number, err := pathInt(r, "number")
	if err != nil {
		badParam(w, r, err)
		return
	}
	format, err := queryFormat(r, "json", "text")
	if err != nil {
		badParam(w, r, err)
		return
	}

	pd, err := s.bookings.PassengerDetails(r.Context(), id, number)
	if err != nil {
		s.fail(w, r, err, "travel package or passenger not found")
		return
	}
	if format == "text" {
		s.writeText(w, r, func(out io.Writer) error { return report.WritePassengerDetails(out, pd) })
		return
	}
	writeJSON(w, r, http.StatusOK, passengerDetailsToResponse(pd))
}
