// Package service contains the business logic of the travel booking API.
// It serialises access to the in-memory booking model, records every sign-up
// attempt in the booking ledger, and hands out value read models only.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pkordes/travel-package/internal/domain"
	"github.com/pkordes/travel-package/internal/repo"
)

// ActivityInput carries the fields needed to create an activity.
type ActivityInput struct {
	Name        string
	Description string
	Cost        decimal.Decimal
	Capacity    int
}

// PassengerInput carries the fields needed to register a passenger.
// Balance is the opening balance; nothing funds it afterwards.
type PassengerInput struct {
	Name    string
	Number  int
	Tier    domain.Tier
	Balance decimal.Decimal
}

// BookingService implements the operations of the booking model.
// All methods are safe for concurrent use.
type BookingService struct {
	mu      sync.Mutex
	catalog *repo.Catalog
	ledger  repo.BookingRepo
	policy  domain.SeatPolicy
	log     *slog.Logger
}

// Option customises a BookingService.
type Option func(*BookingService)

// WithSeatPolicy chooses what happens to a booked place when payment is declined.
func WithSeatPolicy(p domain.SeatPolicy) Option {
	return func(s *BookingService) { s.policy = p }
}

// WithLogger sets the logger used for booking outcomes. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *BookingService) { s.log = l }
}

// NewBookingService constructs a BookingService over catalog and ledger.
func NewBookingService(catalog *repo.Catalog, ledger repo.BookingRepo, opts ...Option) *BookingService {
	s := &BookingService{
		catalog: catalog,
		ledger:  ledger,
		policy:  domain.KeepSeatOnDecline,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreatePackage creates an empty travel package.
func (s *BookingService) CreatePackage(ctx context.Context, name string, capacity int) (domain.PackageSummary, error) {
	tp, err := domain.NewTravelPackage(name, capacity)
	if err != nil {
		return domain.PackageSummary{}, fmt.Errorf("service.BookingService.CreatePackage: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.catalog.AddPackage(tp); err != nil {
		return domain.PackageSummary{}, fmt.Errorf("service.BookingService.CreatePackage: %w", err)
	}
	s.log.InfoContext(ctx, "package created", "package_id", tp.ID, "name", tp.Name, "capacity", capacity)
	return tp.Summary(), nil
}

// ListPackages returns every package in creation order.
// Always returns a non-nil slice.
func (s *BookingService) ListPackages(ctx context.Context) ([]domain.PackageSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	packages := s.catalog.Packages()
	out := make([]domain.PackageSummary, 0, len(packages))
	for _, tp := range packages {
		out = append(out, tp.Summary())
	}
	return out, nil
}

// AddDestination adds a named destination to a package.
func (s *BookingService) AddDestination(ctx context.Context, packageID uuid.UUID, name string) (domain.DestinationSummary, error) {
	d, err := domain.NewDestination(name)
	if err != nil {
		return domain.DestinationSummary{}, fmt.Errorf("service.BookingService.AddDestination: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.catalog.AddDestination(packageID, d); err != nil {
		return domain.DestinationSummary{}, fmt.Errorf("service.BookingService.AddDestination: %w", err)
	}
	return d.Summary(), nil
}

// AddActivity adds an activity to a destination of a package.
func (s *BookingService) AddActivity(ctx context.Context, packageID, destinationID uuid.UUID, in ActivityInput) (domain.ActivitySummary, error) {
	a, err := domain.NewActivity(in.Name, in.Description, in.Cost, in.Capacity)
	if err != nil {
		return domain.ActivitySummary{}, fmt.Errorf("service.BookingService.AddActivity: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.catalog.AddActivity(packageID, destinationID, a); err != nil {
		return domain.ActivitySummary{}, fmt.Errorf("service.BookingService.AddActivity: %w", err)
	}
	return a.Summary(), nil
}

// RegisterPassenger creates a passenger. Passenger numbers are unique across
// the service; a duplicate returns domain.ErrConflict.
func (s *BookingService) RegisterPassenger(ctx context.Context, in PassengerInput) (domain.PassengerDetails, error) {
	p, err := domain.NewPassenger(in.Name, in.Number, in.Tier, domain.WithBalance(in.Balance))
	if err != nil {
		return domain.PassengerDetails{}, fmt.Errorf("service.BookingService.RegisterPassenger: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.catalog.AddPassenger(p); err != nil {
		return domain.PassengerDetails{}, fmt.Errorf("service.BookingService.RegisterPassenger: %w", err)
	}
	return p.Details(), nil
}

// GetPassenger returns a registered passenger's details.
func (s *BookingService) GetPassenger(ctx context.Context, number int) (domain.PassengerDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.catalog.Passenger(number)
	if err != nil {
		return domain.PassengerDetails{}, fmt.Errorf("service.BookingService.GetPassenger: %w", err)
	}
	return p.Details(), nil
}

// Enroll adds a registered passenger to a package.
// Returns domain.ErrPackageFull when the package is at capacity and
// domain.ErrConflict when the passenger is already enrolled.
func (s *BookingService) Enroll(ctx context.Context, packageID uuid.UUID, number int) (domain.PackageSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tp, err := s.catalog.Package(packageID)
	if err != nil {
		return domain.PackageSummary{}, fmt.Errorf("service.BookingService.Enroll: %w", err)
	}
	p, err := s.catalog.Passenger(number)
	if err != nil {
		return domain.PackageSummary{}, fmt.Errorf("service.BookingService.Enroll: %w", err)
	}
	if tp.HasPassenger(number) {
		return domain.PackageSummary{}, fmt.Errorf("service.BookingService.Enroll: passenger %d already enrolled: %w", number, domain.ErrConflict)
	}

	if outcome := tp.AddPassenger(p); !outcome.OK() {
		s.log.WarnContext(ctx, "enrolment refused",
			"package_id", packageID, "passenger", number, "outcome", outcome.String())
		return domain.PackageSummary{}, fmt.Errorf("service.BookingService.Enroll: %w", outcome.Err())
	}
	s.log.InfoContext(ctx, "passenger enrolled", "package_id", packageID, "passenger", number)
	return tp.Summary(), nil
}

// SignUp signs a passenger up for an activity and records the attempt in the
// ledger. A refused sign-up is not an error: the receipt's Outcome says why.
// The passenger does not have to be enrolled in the activity's package.
func (s *BookingService) SignUp(ctx context.Context, number int, activityID uuid.UUID) (domain.SignUpReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.catalog.Passenger(number)
	if err != nil {
		return domain.SignUpReceipt{}, fmt.Errorf("service.BookingService.SignUp: %w", err)
	}
	a, packageID, err := s.catalog.Activity(activityID)
	if err != nil {
		return domain.SignUpReceipt{}, fmt.Errorf("service.BookingService.SignUp: %w", err)
	}

	res := p.SignUp(a, s.policy)
	receipt := domain.SignUpReceipt{
		PassengerNumber: p.Number,
		ActivityID:      a.ID,
		ActivityName:    a.Name,
		Outcome:         res.Outcome,
		Price:           res.Price,
		Charged:         res.Charged,
		Balance:         p.Balance(),
		SeatHeld:        res.SeatHeld,
	}

	attrs := []any{
		"passenger", p.Number, "tier", string(p.Tier), "activity_id", a.ID,
		"outcome", res.Outcome.String(), "charged", res.Charged.String(),
	}
	if res.Outcome.OK() {
		s.log.InfoContext(ctx, "sign-up accepted", attrs...)
	} else {
		s.log.WarnContext(ctx, "sign-up refused", attrs...)
	}

	_, err = s.ledger.Create(ctx, domain.Booking{
		PackageID:       packageID,
		PassengerNumber: p.Number,
		ActivityID:      a.ID,
		ActivityName:    a.Name,
		Tier:            p.Tier,
		Outcome:         res.Outcome,
		Charged:         res.Charged,
	})
	if err != nil {
		// The model has already changed; the receipt is still accurate.
		return receipt, fmt.Errorf("service.BookingService.SignUp: record booking: %w", err)
	}
	return receipt, nil
}

// Itinerary returns a package's destinations and activities.
func (s *BookingService) Itinerary(ctx context.Context, packageID uuid.UUID) (domain.Itinerary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tp, err := s.catalog.Package(packageID)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("service.BookingService.Itinerary: %w", err)
	}
	return tp.Itinerary(), nil
}

// PassengerList returns a package's roster.
func (s *BookingService) PassengerList(ctx context.Context, packageID uuid.UUID) (domain.PassengerList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tp, err := s.catalog.Package(packageID)
	if err != nil {
		return domain.PassengerList{}, fmt.Errorf("service.BookingService.PassengerList: %w", err)
	}
	return tp.PassengerList(), nil
}

// PassengerDetails describes a passenger in the context of a package.
// Like the model, it does not require the passenger to be enrolled.
func (s *BookingService) PassengerDetails(ctx context.Context, packageID uuid.UUID, number int) (domain.PassengerDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tp, err := s.catalog.Package(packageID)
	if err != nil {
		return domain.PassengerDetails{}, fmt.Errorf("service.BookingService.PassengerDetails: %w", err)
	}
	p, err := s.catalog.Passenger(number)
	if err != nil {
		return domain.PassengerDetails{}, fmt.Errorf("service.BookingService.PassengerDetails: %w", err)
	}
	return tp.PassengerDetails(p), nil
}

// AvailableActivities returns a package's activities that have free places.
func (s *BookingService) AvailableActivities(ctx context.Context, packageID uuid.UUID) ([]domain.AvailableActivity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tp, err := s.catalog.Package(packageID)
	if err != nil {
		return nil, fmt.Errorf("service.BookingService.AvailableActivities: %w", err)
	}
	return tp.AvailableActivities(), nil
}

// Manifest returns a package's flat passenger × activity table.
func (s *BookingService) Manifest(ctx context.Context, packageID uuid.UUID) ([]domain.ManifestRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tp, err := s.catalog.Package(packageID)
	if err != nil {
		return nil, fmt.Errorf("service.BookingService.Manifest: %w", err)
	}
	return tp.Manifest(), nil
}

// Bookings returns a page of a package's ledger, newest first, and the total.
func (s *BookingService) Bookings(ctx context.Context, packageID uuid.UUID, page domain.PaginationParams) ([]domain.Booking, int64, error) {
	s.mu.Lock()
	_, err := s.catalog.Package(packageID)
	s.mu.Unlock()
	if err != nil {
		return nil, 0, fmt.Errorf("service.BookingService.Bookings: %w", err)
	}

	bookings, total, err := s.ledger.ListByPackage(ctx, packageID, page)
	if err != nil {
		return nil, 0, fmt.Errorf("service.BookingService.Bookings: %w", err)
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings, total, nil
}

// PassengerBookings returns every ledger entry for a passenger, oldest first.
func (s *BookingService) PassengerBookings(ctx context.Context, number int) ([]domain.Booking, error) {
	s.mu.Lock()
	_, err := s.catalog.Passenger(number)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("service.BookingService.PassengerBookings: %w", err)
	}

	bookings, err := s.ledger.ListByPassenger(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("service.BookingService.PassengerBookings: %w", err)
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings, nil
}
