package domain

import "time"

type Bus struct {
	ID        string    `json:"id"`
	BusNumber string    `json:"bus_number"`
	Capacity  int       `json:"capacity"`
	RouteID   *string   `json:"route_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateBusInput struct {
	BusNumber string
	Capacity  int
	RouteID   *string
}
