package dto

import (
	"time"

	"github.com/Kane254/KBR-project/internal/domain"
)

type RouteResponse struct {
	ID          string `json:"id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	CreatedAt   string `json:"created_at"`
}

type BusResponse struct {
	ID        string  `json:"id"`
	BusNumber string  `json:"bus_number"`
	Capacity  int     `json:"capacity"`
	RouteID   *string `json:"route_id,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type TripResponse struct {
	ID             string `json:"id"`
	BusID          string `json:"bus_id"`
	RouteID        string `json:"route_id"`
	DepartureTime  string `json:"departure_time"`
	Fare           string `json:"fare"`
	AvailableSeats int    `json:"available_seats"`
	CreatedAt      string `json:"created_at"`
}

type TripDetailsResponse struct {
	TripResponse
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	BusNumber   string `json:"bus_number"`
	Capacity    int    `json:"capacity"`
}

type SeatResponse struct {
	ID         string `json:"id"`
	SeatNumber int    `json:"seat_number"`
	Booked     bool   `json:"booked"`
}

type SeatMapResponse struct {
	Trip           TripDetailsResponse `json:"trip"`
	Seats          []SeatResponse      `json:"seats"`
	AvailableSeats int                 `json:"available_seats"`
}

type BookingResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	TripID          string `json:"trip_id"`
	SeatNumbers     []int  `json:"seat_numbers"`
	TotalPrice      string `json:"total_price"`
	DiscountApplied bool   `json:"discount_applied"`
	PaymentStatus   string `json:"payment_status"`
	CreatedAt       string `json:"created_at"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToRouteResponse(r *domain.Route) RouteResponse {
	return RouteResponse{
		ID:          r.ID,
		Origin:      r.Origin,
		Destination: r.Destination,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
}

func ToBusResponse(b *domain.Bus) BusResponse {
	return BusResponse{
		ID:        b.ID,
		BusNumber: b.BusNumber,
		Capacity:  b.Capacity,
		RouteID:   b.RouteID,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

func ToTripResponse(t *domain.Trip) TripResponse {
	return TripResponse{
		ID:             t.ID,
		BusID:          t.BusID,
		RouteID:        t.RouteID,
		DepartureTime:  t.DepartureTime.Format(time.RFC3339),
		Fare:           t.Fare.StringFixed(2),
		AvailableSeats: t.AvailableSeats,
		CreatedAt:      t.CreatedAt.Format(time.RFC3339),
	}
}

func ToTripDetailsResponse(t *domain.TripDetails) TripDetailsResponse {
	return TripDetailsResponse{
		TripResponse: ToTripResponse(&t.Trip),
		Origin:       t.Origin,
		Destination:  t.Destination,
		BusNumber:    t.BusNumber,
		Capacity:     t.Capacity,
	}
}

func ToSeatMapResponse(m *domain.SeatMap) SeatMapResponse {
	seats := make([]SeatResponse, 0, len(m.Seats))
	for _, s := range m.Seats {
		seats = append(seats, SeatResponse{
			ID:         s.ID,
			SeatNumber: s.SeatNumber,
			Booked:     s.Booked,
		})
	}

	return SeatMapResponse{
		Trip:           ToTripDetailsResponse(&m.Trip),
		Seats:          seats,
		AvailableSeats: m.AvailableSeats,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		TripID:          b.TripID,
		SeatNumbers:     b.SeatNumbers,
		TotalPrice:      b.TotalPrice.StringFixed(2),
		DiscountApplied: b.DiscountApplied,
		PaymentStatus:   string(b.PaymentStatus),
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
