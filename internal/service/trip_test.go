package service

import (
	"context"
	"testing"
	"time"

	"github.com/Kane254/KBR-project/internal/domain"
	"github.com/Kane254/KBR-project/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tripMocks struct {
	tripRepo  *mocks.MockTripRepo
	routeRepo *mocks.MockRouteRepo
	busRepo   *mocks.MockBusRepo
	seatRepo  *mocks.MockSeatRepo
}

func newTripService(t *testing.T) (*TripService, tripMocks) {
	t.Helper()
	m := tripMocks{
		tripRepo:  mocks.NewMockTripRepo(t),
		routeRepo: mocks.NewMockRouteRepo(t),
		busRepo:   mocks.NewMockBusRepo(t),
		seatRepo:  mocks.NewMockSeatRepo(t),
	}
	return NewTripService(m.tripRepo, m.routeRepo, m.busRepo, m.seatRepo), m
}

func TestTripService_CreateRoute(t *testing.T) {
	svc, m := newTripService(t)

	m.routeRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	route, err := svc.CreateRoute(context.Background(), domain.CreateRouteInput{
		Origin:      "Nairobi",
		Destination: "Kisumu",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, route.ID)
	assert.Equal(t, "Nairobi", route.Origin)
	assert.Equal(t, "Kisumu", route.Destination)
}

func TestTripService_CreateRoute_MissingOrigin(t *testing.T) {
	svc, _ := newTripService(t)

	_, err := svc.CreateRoute(context.Background(), domain.CreateRouteInput{
		Destination: "Kisumu",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_CreateRoute_Duplicate(t *testing.T) {
	svc, m := newTripService(t)

	m.routeRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrRouteConflict)

	_, err := svc.CreateRoute(context.Background(), domain.CreateRouteInput{
		Origin:      "Nairobi",
		Destination: "Kisumu",
	})

	assert.ErrorIs(t, err, domain.ErrRouteConflict)
}

func TestTripService_CreateBus(t *testing.T) {
	svc, m := newTripService(t)

	routeID := "r1"

	m.routeRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Route{ID: "r1"}, nil)
	m.busRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	bus, err := svc.CreateBus(context.Background(), domain.CreateBusInput{
		BusNumber: "KBR-001",
		Capacity:  40,
		RouteID:   &routeID,
	})

	require.NoError(t, err)
	assert.Equal(t, "KBR-001", bus.BusNumber)
	assert.Equal(t, 40, bus.Capacity)
}

func TestTripService_CreateBus_InvalidCapacity(t *testing.T) {
	svc, _ := newTripService(t)

	_, err := svc.CreateBus(context.Background(), domain.CreateBusInput{
		BusNumber: "KBR-001",
		Capacity:  0,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_CreateBus_UnknownRoute(t *testing.T) {
	svc, m := newTripService(t)

	routeID := "missing"

	m.routeRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrRouteNotFound)

	_, err := svc.CreateBus(context.Background(), domain.CreateBusInput{
		BusNumber: "KBR-001",
		Capacity:  40,
		RouteID:   &routeID,
	})

	assert.ErrorIs(t, err, domain.ErrRouteNotFound)
}

func TestTripService_CreateTrip(t *testing.T) {
	svc, m := newTripService(t)

	departure := time.Now().Add(48 * time.Hour)
	fare, _ := decimal.NewFromString("1200.00")

	m.busRepo.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Bus{ID: "b1", Capacity: 44}, nil)
	m.routeRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Route{ID: "r1"}, nil)
	m.tripRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	trip, err := svc.CreateTrip(context.Background(), domain.CreateTripInput{
		BusID:         "b1",
		RouteID:       "r1",
		DepartureTime: departure,
		Fare:          fare,
	})

	require.NoError(t, err)
	assert.Equal(t, 44, trip.AvailableSeats, "availability starts at bus capacity")
	assert.Equal(t, "1200.00", trip.Fare.StringFixed(2))
}

func TestTripService_CreateTrip_PastDeparture(t *testing.T) {
	svc, _ := newTripService(t)

	_, err := svc.CreateTrip(context.Background(), domain.CreateTripInput{
		BusID:         "b1",
		RouteID:       "r1",
		DepartureTime: time.Now().Add(-time.Hour),
		Fare:          decimal.NewFromInt(100),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_CreateTrip_NegativeFare(t *testing.T) {
	svc, _ := newTripService(t)

	_, err := svc.CreateTrip(context.Background(), domain.CreateTripInput{
		BusID:         "b1",
		RouteID:       "r1",
		DepartureTime: time.Now().Add(time.Hour),
		Fare:          decimal.NewFromInt(-5),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_CreateTrip_DuplicateSchedule(t *testing.T) {
	svc, m := newTripService(t)

	m.busRepo.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Bus{ID: "b1", Capacity: 44}, nil)
	m.routeRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Route{ID: "r1"}, nil)
	m.tripRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrTripConflict)

	_, err := svc.CreateTrip(context.Background(), domain.CreateTripInput{
		BusID:         "b1",
		RouteID:       "r1",
		DepartureTime: time.Now().Add(time.Hour),
		Fare:          decimal.NewFromInt(100),
	})

	assert.ErrorIs(t, err, domain.ErrTripConflict)
}

func TestTripService_Search(t *testing.T) {
	svc, m := newTripService(t)

	filter := domain.TripFilter{Origin: "Nairobi"}
	found := []*domain.TripDetails{{Origin: "Nairobi", Destination: "Mombasa"}}

	m.tripRepo.EXPECT().Search(mock.Anything, filter).Return(found, nil)

	got, err := svc.Search(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, found, got)
}

func TestTripService_SeatMap_ProvisionsLazily(t *testing.T) {
	svc, m := newTripService(t)

	trip := &domain.TripDetails{
		Trip:     domain.Trip{ID: "t1", AvailableSeats: 3},
		Capacity: 3,
	}

	m.tripRepo.EXPECT().GetByID(mock.Anything, "t1").Return(trip, nil)
	m.seatRepo.EXPECT().EnsureProvisioned(mock.Anything, "t1", 3).Return(nil)
	m.seatRepo.EXPECT().ListByTrip(mock.Anything, "t1").Return([]domain.Seat{
		{ID: "s1", SeatNumber: 1, Booked: false},
		{ID: "s2", SeatNumber: 2, Booked: true},
		{ID: "s3", SeatNumber: 3, Booked: false},
	}, nil)

	seatMap, err := svc.SeatMap(context.Background(), "t1")

	require.NoError(t, err)
	assert.Len(t, seatMap.Seats, 3)
	assert.Equal(t, 2, seatMap.AvailableSeats)
}

func TestTripService_SeatMap_TripNotFound(t *testing.T) {
	svc, m := newTripService(t)

	m.tripRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrTripNotFound)

	_, err := svc.SeatMap(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrTripNotFound)
}
