package domain

import "github.com/shopspring/decimal"

// Bookings of more than discountThreshold seats get 10% off.
const discountThreshold = 5

var discountRate = decimal.New(90, -2)

// Quote computes the total price for seatCount seats at farePerSeat each.
// The second return reports whether the volume discount was applied.
func Quote(seatCount int, farePerSeat decimal.Decimal) (decimal.Decimal, bool) {
	total := farePerSeat.Mul(decimal.NewFromInt(int64(seatCount)))
	if seatCount > discountThreshold {
		return total.Mul(discountRate).Round(2), true
	}
	return total.Round(2), false
}
