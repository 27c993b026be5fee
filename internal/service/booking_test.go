package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Kane254/KBR-project/internal/domain"
	"github.com/Kane254/KBR-project/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingMocks struct {
	bookingRepo *mocks.MockBookingRepo
	tripRepo    *mocks.MockTripRepo
	seatRepo    *mocks.MockSeatRepo
	userRepo    *mocks.MockUserRepo
	gateway     *mocks.MockPaymentGateway
	dispatcher  *mocks.MockMailDispatcher
}

func newBookingService(t *testing.T) (*BookingService, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		bookingRepo: mocks.NewMockBookingRepo(t),
		tripRepo:    mocks.NewMockTripRepo(t),
		seatRepo:    mocks.NewMockSeatRepo(t),
		userRepo:    mocks.NewMockUserRepo(t),
		gateway:     mocks.NewMockPaymentGateway(t),
		dispatcher:  mocks.NewMockMailDispatcher(t),
	}
	svc := NewBookingService(
		m.bookingRepo, m.tripRepo, m.seatRepo, m.userRepo,
		m.gateway, m.dispatcher,
		time.Second, newTestLogger(t),
	)
	return svc, m
}

func testTrip(fare string, available int) *domain.TripDetails {
	f, _ := decimal.NewFromString(fare)
	return &domain.TripDetails{
		Trip: domain.Trip{
			ID:             "t1",
			Fare:           f,
			AvailableSeats: available,
			DepartureTime:  time.Date(2026, 10, 1, 8, 30, 0, 0, time.UTC),
		},
		Origin:      "Nairobi",
		Destination: "Mombasa",
		BusNumber:   "KBR-001",
		Capacity:    40,
	}
}

func TestBookingService_Book_Success(t *testing.T) {
	svc, m := newBookingService(t)

	trip := testTrip("100.00", 40)
	user := &domain.User{ID: "u1", Username: "alice", Email: "alice@example.com"}
	seatIDs := []string{"s1", "s2"}

	m.tripRepo.EXPECT().GetByID(mock.Anything, "t1").Return(trip, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.seatRepo.EXPECT().Claim(mock.Anything, "t1", seatIDs).Return([]domain.Seat{
		{ID: "s1", TripID: "t1", SeatNumber: 3, Booked: true},
		{ID: "s2", TripID: "t1", SeatNumber: 4, Booked: true},
	}, nil)
	m.gateway.EXPECT().Authorize(mock.Anything, "u1", mock.Anything).Return(nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.dispatcher.EXPECT().Enqueue(mock.Anything).Run(func(mail domain.Mail) {
		assert.Equal(t, "alice@example.com", mail.To)
		assert.Contains(t, mail.Subject, "KBR-001")
		assert.Contains(t, mail.Body, "Seats Booked: 3, 4")
	}).Return()

	booking, err := svc.Book(context.Background(), "t1", "u1", seatIDs)

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, []int{3, 4}, booking.SeatNumbers)
	assert.Equal(t, "200.00", booking.TotalPrice.StringFixed(2))
	assert.False(t, booking.DiscountApplied)
	assert.Equal(t, domain.PaymentStatusCompleted, booking.PaymentStatus)
}

func TestBookingService_Book_AppliesVolumeDiscount(t *testing.T) {
	svc, m := newBookingService(t)

	trip := testTrip("100.00", 40)
	user := &domain.User{ID: "u1", Username: "alice", Email: "alice@example.com"}
	seatIDs := []string{"s1", "s2", "s3", "s4", "s5", "s6"}

	claimed := make([]domain.Seat, len(seatIDs))
	for i := range seatIDs {
		claimed[i] = domain.Seat{ID: seatIDs[i], TripID: "t1", SeatNumber: i + 1, Booked: true}
	}

	m.tripRepo.EXPECT().GetByID(mock.Anything, "t1").Return(trip, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.seatRepo.EXPECT().Claim(mock.Anything, "t1", seatIDs).Return(claimed, nil)
	m.gateway.EXPECT().Authorize(mock.Anything, "u1", mock.MatchedBy(func(amount decimal.Decimal) bool {
		return amount.StringFixed(2) == "540.00"
	})).Return(nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.dispatcher.EXPECT().Enqueue(mock.Anything).Run(func(mail domain.Mail) {
		assert.Contains(t, mail.Body, "A 10% discount was applied")
	}).Return()

	booking, err := svc.Book(context.Background(), "t1", "u1", seatIDs)

	require.NoError(t, err)
	assert.True(t, booking.DiscountApplied)
	assert.Equal(t, "540.00", booking.TotalPrice.StringFixed(2))
}

func TestBookingService_Book_EmptySelection(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.Book(context.Background(), "t1", "u1", []string{"", ""})

	assert.ErrorIs(t, err, domain.ErrInvalidSelection)
}

func TestBookingService_Book_DeduplicatesSeatIDs(t *testing.T) {
	svc, m := newBookingService(t)

	trip := testTrip("50.00", 40)
	user := &domain.User{ID: "u1", Username: "alice", Email: "alice@example.com"}

	m.tripRepo.EXPECT().GetByID(mock.Anything, "t1").Return(trip, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.seatRepo.EXPECT().Claim(mock.Anything, "t1", []string{"s1"}).Return([]domain.Seat{
		{ID: "s1", TripID: "t1", SeatNumber: 7, Booked: true},
	}, nil)
	m.gateway.EXPECT().Authorize(mock.Anything, "u1", mock.Anything).Return(nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.dispatcher.EXPECT().Enqueue(mock.Anything).Return()

	booking, err := svc.Book(context.Background(), "t1", "u1", []string{"s1", "s1", "s1"})

	require.NoError(t, err)
	assert.Equal(t, "50.00", booking.TotalPrice.StringFixed(2))
}

func TestBookingService_Book_TripNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.tripRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrTripNotFound)

	_, err := svc.Book(context.Background(), "missing", "u1", []string{"s1"})

	assert.ErrorIs(t, err, domain.ErrTripNotFound)
}

func TestBookingService_Book_UserNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.tripRepo.EXPECT().GetByID(mock.Anything, "t1").Return(testTrip("100.00", 40), nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Book(context.Background(), "t1", "missing", []string{"s1"})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestBookingService_Book_NotEnoughAvailableSeats(t *testing.T) {
	svc, m := newBookingService(t)

	m.tripRepo.EXPECT().GetByID(mock.Anything, "t1").Return(testTrip("100.00", 1), nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	_, err := svc.Book(context.Background(), "t1", "u1", []string{"s1", "s2"})

	assert.ErrorIs(t, err, domain.ErrNoAvailableSeats)
}

func TestBookingService_Book_SeatAlreadyTaken(t *testing.T) {
	svc, m := newBookingService(t)

	m.tripRepo.EXPECT().GetByID(mock.Anything, "t1").Return(testTrip("100.00", 40), nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.seatRepo.EXPECT().Claim(mock.Anything, "t1", []string{"s1"}).
		Return(nil, domain.ErrSeatUnavailable)

	_, err := svc.Book(context.Background(), "t1", "u1", []string{"s1"})

	assert.ErrorIs(t, err, domain.ErrSeatUnavailable)
}

func TestBookingService_Book_PaymentDeclinedReleasesSeats(t *testing.T) {
	svc, m := newBookingService(t)

	seatIDs := []string{"s1", "s2"}

	m.tripRepo.EXPECT().GetByID(mock.Anything, "t1").Return(testTrip("100.00", 40), nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.seatRepo.EXPECT().Claim(mock.Anything, "t1", seatIDs).Return([]domain.Seat{
		{ID: "s1", SeatNumber: 1, Booked: true},
		{ID: "s2", SeatNumber: 2, Booked: true},
	}, nil)
	m.gateway.EXPECT().Authorize(mock.Anything, "u1", mock.Anything).
		Return(errors.New("card declined"))
	m.seatRepo.EXPECT().Release(mock.Anything, "t1", seatIDs).Return(nil)

	_, err := svc.Book(context.Background(), "t1", "u1", seatIDs)

	assert.ErrorIs(t, err, domain.ErrPaymentDeclined)
}

func TestBookingService_Book_ReleaseSurvivesRequestCancel(t *testing.T) {
	svc, m := newBookingService(t)

	seatIDs := []string{"s1"}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.tripRepo.EXPECT().GetByID(mock.Anything, "t1").Return(testTrip("100.00", 40), nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.seatRepo.EXPECT().Claim(mock.Anything, "t1", seatIDs).Return([]domain.Seat{
		{ID: "s1", SeatNumber: 1, Booked: true},
	}, nil)
	// клиент отваливается прямо во время авторизации
	m.gateway.EXPECT().Authorize(mock.Anything, "u1", mock.Anything).
		Run(func(authCtx context.Context, userID string, amount decimal.Decimal) {
			cancel()
		}).
		Return(context.Canceled)
	m.seatRepo.EXPECT().Release(mock.Anything, "t1", seatIDs).
		Run(func(releaseCtx context.Context, tripID string, ids []string) {
			assert.NoError(t, releaseCtx.Err(), "release must run on a live context")
		}).
		Return(nil)

	_, err := svc.Book(ctx, "t1", "u1", seatIDs)

	assert.ErrorIs(t, err, domain.ErrPaymentDeclined)
}

func TestBookingService_Book_LedgerConflictReleasesSeats(t *testing.T) {
	svc, m := newBookingService(t)

	seatIDs := []string{"s1"}

	m.tripRepo.EXPECT().GetByID(mock.Anything, "t1").Return(testTrip("100.00", 40), nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.seatRepo.EXPECT().Claim(mock.Anything, "t1", seatIDs).Return([]domain.Seat{
		{ID: "s1", SeatNumber: 1, Booked: true},
	}, nil)
	m.gateway.EXPECT().Authorize(mock.Anything, "u1", mock.Anything).Return(nil)
	// уникальный индекс booking_seats сработал — место уже в другой записи
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Return(domain.ErrSeatUnavailable)
	m.seatRepo.EXPECT().Release(mock.Anything, "t1", seatIDs).Return(nil)

	_, err := svc.Book(context.Background(), "t1", "u1", seatIDs)

	assert.ErrorIs(t, err, domain.ErrSeatUnavailable)
}

func TestBookingService_Book_PersistFailureReleasesSeats(t *testing.T) {
	svc, m := newBookingService(t)

	seatIDs := []string{"s1"}

	m.tripRepo.EXPECT().GetByID(mock.Anything, "t1").Return(testTrip("100.00", 40), nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.seatRepo.EXPECT().Claim(mock.Anything, "t1", seatIDs).Return([]domain.Seat{
		{ID: "s1", SeatNumber: 1, Booked: true},
	}, nil)
	m.gateway.EXPECT().Authorize(mock.Anything, "u1", mock.Anything).Return(nil)
	m.bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))
	m.seatRepo.EXPECT().Release(mock.Anything, "t1", seatIDs).Return(nil)

	_, err := svc.Book(context.Background(), "t1", "u1", seatIDs)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrPaymentDeclined)
}

func TestBookingService_ListByUser(t *testing.T) {
	svc, m := newBookingService(t)

	bookings := []*domain.Booking{{ID: "b1", UserID: "u1"}}

	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.bookingRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(bookings, nil)

	got, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, bookings, got)
}

func TestBookingService_ListByUser_UserNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.ListByUser(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
