package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

type Booking struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	TripID          string          `json:"trip_id"`
	SeatNumbers     []int           `json:"seat_numbers"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	DiscountApplied bool            `json:"discount_applied"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	CreatedAt       time.Time       `json:"created_at"`
}
