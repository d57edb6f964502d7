package handler

import (
	"io"
	"net/http"

	"github.com/pkordes/travel-package/internal/domain"
	"github.com/pkordes/travel-package/internal/report"
	"github.com/pkordes/travel-package/internal/service"
)

// CreatePackage handles POST /packages.
func (s *Server) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var body createPackageRequest
	if !decodeBody(w, r, &body) {
		return
	}

	created, err := s.bookings.CreatePackage(r.Context(), body.Name, body.Capacity)
	if err != nil {
		s.fail(w, r, err, "")
		return
	}
	writeJSON(w, r, http.StatusCreated, packageToResponse(created))
}

// ListPackages handles GET /packages.
func (s *Server) ListPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := s.bookings.ListPackages(r.Context())
	if err != nil {
		s.fail(w, r, err, "")
		return
	}

	out := make([]packageResponse, 0, len(packages))
	for _, p := range packages {
		out = append(out, packageToResponse(p))
	}
	writeJSON(w, r, http.StatusOK, out)
}

// AddDestination handles POST /packages/{id}/destinations.
func (s *Server) AddDestination(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		badParam(w, r, err)
		return
	}
	var body createDestinationRequest
	if !decodeBody(w, r, &body) {
		return
	}

	d, err := s.bookings.AddDestination(r.Context(), id, body.Name)
	if err != nil {
		s.fail(w, r, err, "travel package not found")
		return
	}
	writeJSON(w, r, http.StatusCreated, destinationToResponse(d))
}

// AddActivity handles POST /packages/{id}/destinations/{destinationID}/activities.
func (s *Server) AddActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		badParam(w, r, err)
		return
	}
	destinationID, err := pathUUID(r, "destinationID")
	if err != nil {
		badParam(w, r, err)
		return
	}
	var body createActivityRequest
	if !decodeBody(w, r, &body) {
		return
	}

	a, err := s.bookings.AddActivity(r.Context(), id, destinationID, service.ActivityInput{
		Name:        body.Name,
		Description: body.Description,
		Cost:        body.Cost,
		Capacity:    body.Capacity,
	})
	if err != nil {
		s.fail(w, r, err, "travel package or destination not found")
		return
	}
	writeJSON(w, r, http.StatusCreated, activityToResponse(a))
}

// GetItinerary handles GET /packages/{id}/itinerary.
// ?format=text returns the plain-text itinerary report.
func (s *Server) GetItinerary(w http.ResponseWriter, r *http.Request) {
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

	it, err := s.bookings.Itinerary(r.Context(), id)
	if err != nil {
		s.fail(w, r, err, "travel package not found")
		return
	}
	if format == "text" {
		s.writeText(w, r, func(out io.Writer) error { return report.WriteItinerary(out, it) })
		return
	}
	writeJSON(w, r, http.StatusOK, itineraryToResponse(it))
}

// GetAvailability handles GET /packages/{id}/availability.
func (s *Server) GetAvailability(w http.ResponseWriter, r *http.Request) {
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

	avail, err := s.bookings.AvailableActivities(r.Context(), id)
	if err != nil {
		s.fail(w, r, err, "travel package not found")
		return
	}
	if format == "text" {
		s.writeText(w, r, func(out io.Writer) error { return report.WriteAvailableActivities(out, avail) })
		return
	}
	writeJSON(w, r, http.StatusOK, availabilityToResponse(avail))
}

// ListPackageBookings handles GET /packages/{id}/bookings.
// Supports ?page= and ?limit= (defaults: page=1, limit=20, max=100).
func (s *Server) ListPackageBookings(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		badParam(w, r, err)
		return
	}
	page, err := queryInt(r, "page")
	if err != nil {
		badParam(w, r, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		badParam(w, r, err)
		return
	}

	params := domain.NewPaginationParams(page, limit)
	bookings, total, err := s.bookings.Bookings(r.Context(), id, params)
	if err != nil {
		s.fail(w, r, err, "travel package not found")
		return
	}
	writeJSON(w, r, http.StatusOK, bookingPage{
		Data:       bookings,
		Pagination: Pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}
