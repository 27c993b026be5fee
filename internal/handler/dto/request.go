package dto

type CreateRouteRequest struct {
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
}

type CreateBusRequest struct {
	BusNumber string  `json:"bus_number" binding:"required"`
	Capacity  int     `json:"capacity" binding:"required,gt=0"`
	RouteID   *string `json:"route_id" binding:"omitempty,uuid"`
}

type CreateTripRequest struct {
	BusID         string `json:"bus_id" binding:"required,uuid"`
	RouteID       string `json:"route_id" binding:"required,uuid"`
	DepartureTime string `json:"departure_time" binding:"required"`
	Fare          string `json:"fare" binding:"required"`
}

type BookSeatsRequest struct {
	UserID  string   `json:"user_id" binding:"required,uuid"`
	SeatIDs []string `json:"seat_ids" binding:"required,min=1,dive,uuid"`
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}
