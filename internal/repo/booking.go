// Package repo holds the state the booking service works against: the
// in-memory Catalog of the booking model and the booking ledger, which has an
// in-memory and a Postgres implementation.
// No business logic lives here, only storage and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/pkordes/travel-package/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BookingRepo is the booking ledger: an append-only record of sign-up attempts.
type BookingRepo interface {
	// Create appends an entry and returns it with ID and CreatedAt populated.
	Create(ctx context.Context, b domain.Booking) (domain.Booking, error)

	// ListByPackage returns one page of a package's entries, newest first,
	// together with the total number of entries for the package.
	ListByPackage(ctx context.Context, packageID uuid.UUID, page domain.PaginationParams) ([]domain.Booking, int64, error)

	// ListByPassenger returns every entry for a passenger, oldest first.
	ListByPassenger(ctx context.Context, number int) ([]domain.Booking, error)
}

// pgBookingRepo is the Postgres implementation of BookingRepo.
type pgBookingRepo struct {
	db db
}

// NewBookingRepo constructs a BookingRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewBookingRepo(db db) BookingRepo {
	return &pgBookingRepo{db: db}
}

const bookingColumns = `id, package_id, passenger_number, activity_id, activity_name,
		       tier, outcome, charged::text, created_at`

// Create inserts a ledger row and returns the full persisted record.
func (r *pgBookingRepo) Create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	const q = `
		INSERT INTO bookings (package_id, passenger_number, activity_id, activity_name, tier, outcome, charged)
		VALUES (@package_id, @passenger_number, @activity_id, @activity_name, @tier, @outcome, @charged::numeric)
		RETURNING ` + bookingColumns

	args := pgx.NamedArgs{
		"package_id":       b.PackageID,
		"passenger_number": b.PassengerNumber,
		"activity_id":      b.ActivityID,
		"activity_name":    b.ActivityName,
		"tier":             string(b.Tier),
		"outcome":          b.Outcome.String(),
		"charged":          b.Charged.String(),
	}

	result, err := scanBooking(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.Create: %w", err)
	}
	return result, nil
}

// ListByPackage returns a page of a package's ledger, newest first.
func (r *pgBookingRepo) ListByPackage(ctx context.Context, packageID uuid.UUID, page domain.PaginationParams) ([]domain.Booking, int64, error) {
	const countQ = `SELECT count(*) FROM bookings WHERE package_id = @package_id`

	var total int64
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"package_id": packageID}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.BookingRepo.ListByPackage: count: %w", err)
	}

	const q = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE package_id = @package_id
		ORDER BY created_at DESC, id
		LIMIT @limit OFFSET @offset`

	bookings, err := r.query(ctx, q, pgx.NamedArgs{
		"package_id": packageID,
		"limit":      page.Limit,
		"offset":     page.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.BookingRepo.ListByPackage: %w", err)
	}
	return bookings, total, nil
}

// ListByPassenger returns a passenger's ledger, oldest first.
func (r *pgBookingRepo) ListByPassenger(ctx context.Context, number int) ([]domain.Booking, error) {
	const q = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE passenger_number = @passenger_number
		ORDER BY created_at ASC, id`

	bookings, err := r.query(ctx, q, pgx.NamedArgs{"passenger_number": number})
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepo.ListByPassenger: %w", err)
	}
	return bookings, nil
}

func (r *pgBookingRepo) query(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []domain.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return bookings, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanBooking maps a single database row into a domain.Booking.
// charged is selected as text so it round-trips through decimal exactly.
func scanBooking(s scanner) (domain.Booking, error) {
	var (
		b          domain.Booking
		id         pgtype.UUID
		packageID  pgtype.UUID
		activityID pgtype.UUID
		tier       string
		outcome    string
		charged    string
	)

	err := s.Scan(&id, &packageID, &b.PassengerNumber, &activityID, &b.ActivityName,
		&tier, &outcome, &charged, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Booking{}, domain.ErrNotFound
		}
		return domain.Booking{}, err
	}

	b.ID = uuid.UUID(id.Bytes)
	b.PackageID = uuid.UUID(packageID.Bytes)
	b.ActivityID = uuid.UUID(activityID.Bytes)
	b.Tier = domain.Tier(tier)

	o, ok := domain.ParseOutcome(outcome)
	if !ok {
		return domain.Booking{}, fmt.Errorf("unknown outcome %q", outcome)
	}
	b.Outcome = o

	b.Charged, err = decimal.NewFromString(charged)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("parse charged %q: %w", charged, err)
	}
	return b, nil
}
