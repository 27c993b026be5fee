package domain

import "errors"

var (
	ErrRouteNotFound   = errors.New("route not found")
	ErrBusNotFound     = errors.New("bus not found")
	ErrTripNotFound    = errors.New("trip not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrInvalidSelection = errors.New("no valid seats selected")
	ErrSeatUnavailable  = errors.New("one or more selected seats are no longer available")
	ErrNoAvailableSeats = errors.New("no available seats left on this trip")
	ErrPaymentDeclined  = errors.New("payment authorization declined")
	ErrTripConflict     = errors.New("bus already has a trip at this departure time")
	ErrRouteConflict    = errors.New("route with this origin and destination already exists")
)

var (
	ErrUsernameTaken  = errors.New("username is already taken")
	ErrBusNumberTaken = errors.New("bus number is already in use")
)

var (
	ErrValidation = errors.New("validation error")
)
