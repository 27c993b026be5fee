package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Kane254/KBR-project/internal/domain"
	"github.com/Kane254/KBR-project/internal/service/ports"
	"github.com/google/uuid"
)

type TripService struct {
	tripRepo  ports.TripRepo
	routeRepo ports.RouteRepo
	busRepo   ports.BusRepo
	seatRepo  ports.SeatRepo
}

func NewTripService(
	tripRepo ports.TripRepo,
	routeRepo ports.RouteRepo,
	busRepo ports.BusRepo,
	seatRepo ports.SeatRepo,
) *TripService {
	return &TripService{
		tripRepo:  tripRepo,
		routeRepo: routeRepo,
		busRepo:   busRepo,
		seatRepo:  seatRepo,
	}
}

func (s *TripService) CreateRoute(ctx context.Context, input domain.CreateRouteInput) (*domain.Route, error) {
	if input.Origin == "" {
		return nil, fmt.Errorf("%w: origin is required", domain.ErrValidation)
	}
	if input.Destination == "" {
		return nil, fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}

	route := &domain.Route{
		ID:          uuid.New().String(),
		Origin:      input.Origin,
		Destination: input.Destination,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.routeRepo.Create(ctx, route); err != nil {
		return nil, fmt.Errorf("create route: %w", err)
	}

	return route, nil
}

func (s *TripService) ListRoutes(ctx context.Context) ([]*domain.Route, error) {
	return s.routeRepo.List(ctx)
}

func (s *TripService) CreateBus(ctx context.Context, input domain.CreateBusInput) (*domain.Bus, error) {
	if input.BusNumber == "" {
		return nil, fmt.Errorf("%w: bus_number is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if input.RouteID != nil {
		if _, err := s.routeRepo.GetByID(ctx, *input.RouteID); err != nil {
			return nil, fmt.Errorf("check route: %w", err)
		}
	}

	bus := &domain.Bus{
		ID:        uuid.New().String(),
		BusNumber: input.BusNumber,
		Capacity:  input.Capacity,
		RouteID:   input.RouteID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.busRepo.Create(ctx, bus); err != nil {
		return nil, fmt.Errorf("create bus: %w", err)
	}

	return bus, nil
}

func (s *TripService) ListBuses(ctx context.Context) ([]*domain.Bus, error) {
	return s.busRepo.List(ctx)
}

func (s *TripService) CreateTrip(ctx context.Context, input domain.CreateTripInput) (*domain.Trip, error) {
	if input.DepartureTime.Before(time.Now()) {
		return nil, fmt.Errorf("%w: departure_time must be in the future", domain.ErrValidation)
	}
	if input.Fare.IsNegative() {
		return nil, fmt.Errorf("%w: fare must not be negative", domain.ErrValidation)
	}

	bus, err := s.busRepo.GetByID(ctx, input.BusID)
	if err != nil {
		return nil, fmt.Errorf("check bus: %w", err)
	}
	if _, err = s.routeRepo.GetByID(ctx, input.RouteID); err != nil {
		return nil, fmt.Errorf("check route: %w", err)
	}

	trip := &domain.Trip{
		ID:             uuid.New().String(),
		BusID:          input.BusID,
		RouteID:        input.RouteID,
		DepartureTime:  input.DepartureTime,
		Fare:           input.Fare,
		AvailableSeats: bus.Capacity,
		CreatedAt:      time.Now().UTC(),
	}

	if err = s.tripRepo.Create(ctx, trip); err != nil {
		return nil, fmt.Errorf("create trip: %w", err)
	}

	return trip, nil
}

func (s *TripService) Search(ctx context.Context, filter domain.TripFilter) ([]*domain.TripDetails, error) {
	return s.tripRepo.Search(ctx, filter)
}

// SeatMap лениво создаёт места при первом просмотре рейса одним
// идемпотентным запросом, повторный вызов ничего не меняет.
func (s *TripService) SeatMap(ctx context.Context, tripID string) (*domain.SeatMap, error) {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}

	if err = s.seatRepo.EnsureProvisioned(ctx, tripID, trip.Capacity); err != nil {
		return nil, fmt.Errorf("provision seats: %w", err)
	}

	seats, err := s.seatRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("list seats: %w", err)
	}

	available := 0
	for _, seat := range seats {
		if !seat.Booked {
			available++
		}
	}

	return &domain.SeatMap{
		Trip:           *trip,
		Seats:          seats,
		AvailableSeats: available,
	}, nil
}
