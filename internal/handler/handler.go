package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Kane254/KBR-project/internal/domain"
	"github.com/Kane254/KBR-project/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/ginext"
)

type TripSvc interface {
	CreateRoute(ctx context.Context, input domain.CreateRouteInput) (*domain.Route, error)
	ListRoutes(ctx context.Context) ([]*domain.Route, error)
	CreateBus(ctx context.Context, input domain.CreateBusInput) (*domain.Bus, error)
	ListBuses(ctx context.Context) ([]*domain.Bus, error)
	CreateTrip(ctx context.Context, input domain.CreateTripInput) (*domain.Trip, error)
	Search(ctx context.Context, filter domain.TripFilter) ([]*domain.TripDetails, error)
	SeatMap(ctx context.Context, tripID string) (*domain.SeatMap, error)
}

type BookingSvc interface {
	Book(ctx context.Context, tripID, userID string, seatIDs []string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	tripService    TripSvc
	bookingService BookingSvc
	userService    UserSvc
}

func NewHandler(tripService TripSvc, bookingService BookingSvc, userService UserSvc) *Handler {
	return &Handler{
		tripService:    tripService,
		bookingService: bookingService,
		userService:    userService,
	}
}

// Routes

func (h *Handler) CreateRoute(c *ginext.Context) {
	var req dto.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	route, err := h.tripService.CreateRoute(c.Request.Context(), domain.CreateRouteInput{
		Origin:      req.Origin,
		Destination: req.Destination,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRouteResponse(route))
}

func (h *Handler) ListRoutes(c *ginext.Context) {
	routes, err := h.tripService.ListRoutes(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RouteResponse, 0, len(routes))
	for _, r := range routes {
		resp = append(resp, dto.ToRouteResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

// Buses

func (h *Handler) CreateBus(c *ginext.Context) {
	var req dto.CreateBusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bus, err := h.tripService.CreateBus(c.Request.Context(), domain.CreateBusInput{
		BusNumber: req.BusNumber,
		Capacity:  req.Capacity,
		RouteID:   req.RouteID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBusResponse(bus))
}

func (h *Handler) ListBuses(c *ginext.Context) {
	buses, err := h.tripService.ListBuses(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BusResponse, 0, len(buses))
	for _, b := range buses {
		resp = append(resp, dto.ToBusResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Trips

func (h *Handler) CreateTrip(c *ginext.Context) {
	var req dto.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	departure, err := time.Parse(time.RFC3339, req.DepartureTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid departure_time format, expected RFC3339",
		})
		return
	}

	fare, err := decimal.NewFromString(req.Fare)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid fare, expected decimal string"})
		return
	}

	trip, err := h.tripService.CreateTrip(c.Request.Context(), domain.CreateTripInput{
		BusID:         req.BusID,
		RouteID:       req.RouteID,
		DepartureTime: departure,
		Fare:          fare,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTripResponse(trip))
}

func (h *Handler) SearchTrips(c *ginext.Context) {
	filter := domain.TripFilter{
		Origin:      c.Query("origin"),
		Destination: c.Query("destination"),
	}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid date, expected YYYY-MM-DD",
			})
			return
		}
		filter.Date = &date
	}

	trips, err := h.tripService.Search(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TripDetailsResponse, 0, len(trips))
	for _, t := range trips {
		resp = append(resp, dto.ToTripDetailsResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetSeatMap(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid trip id"})
		return
	}

	seatMap, err := h.tripService.SeatMap(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSeatMapResponse(seatMap))
}

// Bookings

func (h *Handler) BookSeats(c *ginext.Context) {
	tripID := c.Param("id")
	if _, err := uuid.Parse(tripID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid trip id"})
		return
	}

	var req dto.BookSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Book(c.Request.Context(), tripID, req.UserID, req.SeatIDs)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), domain.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrRouteNotFound),
		errors.Is(err, domain.ErrBusNotFound),
		errors.Is(err, domain.ErrTripNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSeatUnavailable),
		errors.Is(err, domain.ErrNoAvailableSeats),
		errors.Is(err, domain.ErrTripConflict),
		errors.Is(err, domain.ErrRouteConflict),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrBusNumberTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPaymentDeclined):
		c.JSON(http.StatusPaymentRequired, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidSelection),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
