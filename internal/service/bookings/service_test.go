package bookings

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidosbay/HBP-RatesService/internal/domain"
	bookingRepo "github.com/aidosbay/HBP-RatesService/internal/infra/storage/bookings"
	"github.com/aidosbay/HBP-RatesService/internal/service/bookings/models"
	"github.com/aidosbay/HBP-RatesService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTime struct{ now time.Time }

func (f fakeTime) Now() time.Time { return f.now }

type fakeRepo struct {
	byID       map[int64]*domain.Booking
	byUser     map[int64][]domain.Booking
	cancelled  []int64
	cancelTime time.Time
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeRepo) ListByUser(_ context.Context, userID int64) ([]domain.Booking, error) {
	return f.byUser[userID], nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64, _ *string, now time.Time) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.cancelled = append(f.cancelled, id)
	f.cancelTime = now
	return nil
}

func heldBooking(id, userID int64) *domain.Booking {
	return &domain.Booking{
		ID: id, UserID: userID, HotelID: 1, RoomTypeID: 5, RateID: 10,
		CheckIn: "2025-10-15", CheckOut: "2025-10-17", Guests: 2,
		Total: 22000, Currency: "KZT", Status: domain.StatusHeld,
	}
}

func newTestService(repo *fakeRepo) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = fakeTime{now: time.Date(2025, 10, 2, 10, 0, 0, 0, time.UTC)}
	return svc
}

func TestGetByIDOwnerOnly(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{42: heldBooking(42, 3)}}
	svc := newTestService(repo)

	resp, err := svc.GetByID(context.Background(), 42, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2025-10-15", resp.CheckIn)

	_, err = svc.GetByID(context.Background(), 42, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 1, 3)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings(t *testing.T) {
	repo := &fakeRepo{byUser: map[int64][]domain.Booking{
		3: {*heldBooking(42, 3), *heldBooking(43, 3)},
	}}
	svc := newTestService(repo)

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 3})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	// Пустая история — пустой список, не nil
	resp, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 7})
	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Empty(t, resp.Bookings)

	_, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancelOwnBooking(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{42: heldBooking(42, 3)}}
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{
		UserID:             3,
		CancellationReason: ptr.Ptr("планы изменились"),
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{42}, repo.cancelled)
	assert.Equal(t, time.Date(2025, 10, 2, 10, 0, 0, 0, time.UTC), repo.cancelTime)
}

func TestCancelAccessDenied(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{42: heldBooking(42, 3)}}
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{UserID: 99})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.cancelled)
}

func TestCancelAlreadyCancelled(t *testing.T) {
	b := heldBooking(42, 3)
	b.Status = domain.StatusCancelled
	repo := &fakeRepo{byID: map[int64]*domain.Booking{42: b}}
	svc := newTestService(repo)

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{UserID: 3})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancelReasonTooLong(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{42: heldBooking(42, 3)}}
	svc := newTestService(repo)

	reason := strings.Repeat("x", domain.MaxCancellationReasonLength+1)
	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{
		UserID:             3,
		CancellationReason: &reason,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
