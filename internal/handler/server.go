// Package handler implements the HTTP handlers for the travel booking API.
// All handlers are methods on Server. They are split into files by resource
// (packages.go, passengers.go, signups.go, ...) but share the same Server so
// they can reach its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/travel-package/internal/domain"
	"github.com/pkordes/travel-package/internal/service"
)

// BookingServicer defines the business operations the handlers depend on.
// *service.BookingService satisfies it; tests inject a mock.
type BookingServicer interface {
	CreatePackage(ctx context.Context, name string, capacity int) (domain.PackageSummary, error)
	ListPackages(ctx context.Context) ([]domain.PackageSummary, error)
	AddDestination(ctx context.Context, packageID uuid.UUID, name string) (domain.DestinationSummary, error)
	AddActivity(ctx context.Context, packageID, destinationID uuid.UUID, in service.ActivityInput) (domain.ActivitySummary, error)
	RegisterPassenger(ctx context.Context, in service.PassengerInput) (domain.PassengerDetails, error)
	GetPassenger(ctx context.Context, number int) (domain.PassengerDetails, error)
	Enroll(ctx context.Context, packageID uuid.UUID, number int) (domain.PackageSummary, error)
	SignUp(ctx context.Context, number int, activityID uuid.UUID) (domain.SignUpReceipt, error)
	Itinerary(ctx context.Context, packageID uuid.UUID) (domain.Itinerary, error)
	PassengerList(ctx context.Context, packageID uuid.UUID) (domain.PassengerList, error)
	PassengerDetails(ctx context.Context, packageID uuid.UUID, number int) (domain.PassengerDetails, error)
	AvailableActivities(ctx context.Context, packageID uuid.UUID) ([]domain.AvailableActivity, error)
	Manifest(ctx context.Context, packageID uuid.UUID) ([]domain.ManifestRow, error)
	Bookings(ctx context.Context, packageID uuid.UUID, page domain.PaginationParams) ([]domain.Booking, int64, error)
	PassengerBookings(ctx context.Context, number int) ([]domain.Booking, error)
}

var _ BookingServicer = (*service.BookingService)(nil)

// Server serves the travel booking API.
type Server struct {
	bookings BookingServicer
	log      *slog.Logger
}

// NewServer constructs the Server. A nil logger falls back to slog.Default().
func NewServer(bookings BookingServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{bookings: bookings, log: log}
}

// Routes returns a chi router with every endpoint registered. Cross-cutting
// middleware (request ids, logging, CORS, body limits) is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "not_found", "no such route")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/packages", func(r chi.Router) {
		r.Post("/", s.CreatePackage)
		r.Get("/", s.ListPackages)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/itinerary", s.GetItinerary)
			r.Get("/availability", s.GetAvailability)
			r.Get("/bookings", s.ListPackageBookings)
			r.Get("/manifest", s.GetManifest)

			r.Post("/destinations", s.AddDestination)
			r.Post("/destinations/{destinationID}/activities", s.AddActivity)

			r.Get("/passengers", s.GetPassengerList)
			r.Post("/passengers", s.EnrollPassenger)
			r.Get("/passengers/{number}", s.GetPassengerDetails)
		})
	})

	r.Route("/passengers", func(r chi.Router) {
		r.Post("/", s.RegisterPassenger)
		r.Get("/{number}", s.GetPassenger)
		r.Get("/{number}/bookings", s.ListPassengerBookings)
		r.Post("/{number}/signups", s.SignUp)
	})

	return r
}
