package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Trip struct {
	ID             string          `json:"id"`
	BusID          string          `json:"bus_id"`
	RouteID        string          `json:"route_id"`
	DepartureTime  time.Time       `json:"departure_time"`
	Fare           decimal.Decimal `json:"fare"`
	AvailableSeats int             `json:"available_seats"`
	CreatedAt      time.Time       `json:"created_at"`
}

// TripDetails is a trip joined with its route and bus, as shown in the
// catalog and used to compose confirmation messages.
type TripDetails struct {
	Trip
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	BusNumber   string `json:"bus_number"`
	Capacity    int    `json:"capacity"`
}

type CreateTripInput struct {
	BusID         string
	RouteID       string
	DepartureTime time.Time
	Fare          decimal.Decimal
}

// TripFilter narrows the catalog search. Empty fields match everything;
// only upcoming trips are ever returned.
type TripFilter struct {
	Origin      string
	Destination string
	Date        *time.Time
}
