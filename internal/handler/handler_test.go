package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-package/internal/domain"
	"github.com/pkordes/travel-package/internal/handler"
	"github.com/pkordes/travel-package/internal/service"
)

// mockBookingServicer is a test double for handler.BookingServicer.
// Set only the method fields your test needs; calling an unset one panics,
// which fails the test loudly.
type mockBookingServicer struct {
	createPackage       func(ctx context.Context, name string, capacity int) (domain.PackageSummary, error)
	listPackages        func(ctx context.Context) ([]domain.PackageSummary, error)
	addDestination      func(ctx context.Context, packageID uuid.UUID, name string) (domain.DestinationSummary, error)
	addActivity         func(ctx context.Context, packageID, destinationID uuid.UUID, in service.ActivityInput) (domain.ActivitySummary, error)
	registerPassenger   func(ctx context.Context, in service.PassengerInput) (domain.PassengerDetails, error)
	getPassenger        func(ctx context.Context, number int) (domain.PassengerDetails, error)
	enroll              func(ctx context.Context, packageID uuid.UUID, number int) (domain.PackageSummary, error)
	signUp              func(ctx context.Context, number int, activityID uuid.UUID) (domain.SignUpReceipt, error)
	itinerary           func(ctx context.Context, packageID uuid.UUID) (domain.Itinerary, error)
	passengerList       func(ctx context.Context, packageID uuid.UUID) (domain.PassengerList, error)
	passengerDetails    func(ctx context.Context, packageID uuid.UUID, number int) (domain.PassengerDetails, error)
	availableActivities func(ctx context.Context, packageID uuid.UUID) ([]domain.AvailableActivity, error)
	manifest            func(ctx context.Context, packageID uuid.UUID) ([]domain.ManifestRow, error)
	bookings            func(ctx context.Context, packageID uuid.UUID, page domain.PaginationParams) ([]domain.Booking, int64, error)
	passengerBookings   func(ctx context.Context, number int) ([]domain.Booking, error)
}

func (m *mockBookingServicer) CreatePackage(ctx context.Context, name string, capacity int) (domain.PackageSummary, error) {
	return m.createPackage(ctx, name, capacity)
}
func (m *mockBookingServicer) ListPackages(ctx context.Context) ([]domain.PackageSummary, error) {
	return m.listPackages(ctx)
}
func (m *mockBookingServicer) AddDestination(ctx context.Context, packageID uuid.UUID, name string) (domain.DestinationSummary, error) {
	return m.addDestination(ctx, packageID, name)
}
func (m *mockBookingServicer) AddActivity(ctx context.Context, packageID, destinationID uuid.UUID, in service.ActivityInput) (domain.ActivitySummary, error) {
	return m.addActivity(ctx, packageID, destinationID, in)
}
func (m *mockBookingServicer) RegisterPassenger(ctx context.Context, in service.PassengerInput) (domain.PassengerDetails, error) {
	return m.registerPassenger(ctx, in)
}
func (m *mockBookingServicer) GetPassenger(ctx context.Context, number int) (domain.PassengerDetails, error) {
	return m.getPassenger(ctx, number)
}
func (m *mockBookingServicer) Enroll(ctx context.Context, packageID uuid.UUID, number int) (domain.PackageSummary, error) {
	return m.enroll(ctx, packageID, number)
}
func (m *mockBookingServicer) SignUp(ctx context.Context, number int, activityID uuid.UUID) (domain.SignUpReceipt, error) {
	return m.signUp(ctx, number, activityID)
}
func (m *mockBookingServicer) Itinerary(ctx context.Context, packageID uuid.UUID) (domain.Itinerary, error) {
	return m.itinerary(ctx, packageID)
}
func (m *mockBookingServicer) PassengerList(ctx context.Context, packageID uuid.UUID) (domain.PassengerList, error) {
	return m.passengerList(ctx, packageID)
}
func (m *mockBookingServicer) PassengerDetails(ctx context.Context, packageID uuid.UUID, number int) (domain.PassengerDetails, error) {
	return m.passengerDetails(ctx, packageID, number)
}
func (m *mockBookingServicer) AvailableActivities(ctx context.Context, packageID uuid.UUID) ([]domain.AvailableActivity, error) {
	return m.availableActivities(ctx, packageID)
}
func (m *mockBookingServicer) Manifest(ctx context.Context, packageID uuid.UUID) ([]domain.ManifestRow, error) {
	return m.manifest(ctx, packageID)
}
func (m *mockBookingServicer) Bookings(ctx context.Context, packageID uuid.UUID, page domain.PaginationParams) ([]domain.Booking, int64, error) {
	return m.bookings(ctx, packageID, page)
}
func (m *mockBookingServicer) PassengerBookings(ctx context.Context, number int) ([]domain.Booking, error) {
	return m.passengerBookings(ctx, number)
}

// compile-time check: mockBookingServicer must satisfy handler.BookingServicer.
var _ handler.BookingServicer = (*mockBookingServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server around svc the same way serve does, minus
// the cross-cutting middleware.
func newHTTPHandler(svc handler.BookingServicer) http.Handler {
	return handler.NewServer(svc, slog.New(slog.NewJSONHandler(io.Discard, nil))).Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// do sends one request through h and returns the recorder.
func do(h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// errorBody decodes the {"error":{...}} envelope.
func errorBody(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorDetail {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}
