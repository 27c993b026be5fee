package domain

type Seat struct {
	ID         string `json:"id"`
	TripID     string `json:"trip_id"`
	SeatNumber int    `json:"seat_number"`
	Booked     bool   `json:"booked"`
}

type SeatMap struct {
	Trip           TripDetails `json:"trip"`
	Seats          []Seat      `json:"seats"`
	AvailableSeats int         `json:"available_seats"`
}
