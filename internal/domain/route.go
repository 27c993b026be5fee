package domain

import "time"

type Route struct {
	ID          string    `json:"id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateRouteInput struct {
	Origin      string
	Destination string
}
