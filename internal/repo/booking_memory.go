package repo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/travel-package/internal/domain"
)

// memBookingRepo is the in-memory BookingRepo used when no database is
// configured. Entries live for the lifetime of the process.
type memBookingRepo struct {
	mu       sync.Mutex
	bookings []domain.Booking
	now      func() time.Time
}

// NewMemoryBookingRepo returns an empty in-memory BookingRepo.
func NewMemoryBookingRepo() BookingRepo {
	return &memBookingRepo{now: func() time.Time { return time.Now().UTC() }}
}

func (r *memBookingRepo) Create(_ context.Context, b domain.Booking) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b.ID = uuid.New()
	b.CreatedAt = r.now()
	r.bookings = append(r.bookings, b)
	return b, nil
}

func (r *memBookingRepo) ListByPackage(_ context.Context, packageID uuid.UUID, page domain.PaginationParams) ([]domain.Booking, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Newest first: walk the append-only slice backwards.
	var matched []domain.Booking
	for i := len(r.bookings) - 1; i >= 0; i-- {
		if r.bookings[i].PackageID == packageID {
			matched = append(matched, r.bookings[i])
		}
	}

	start, end := page.Window(len(matched))
	out := make([]domain.Booking, end-start)
	copy(out, matched[start:end])
	return out, int64(len(matched)), nil
}

func (r *memBookingRepo) ListByPassenger(_ context.Context, number int) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []domain.Booking{}
	for _, b := range r.bookings {
		if b.PassengerNumber == number {
			out = append(out, b)
		}
	}
	return out, nil
}
