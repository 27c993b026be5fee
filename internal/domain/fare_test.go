package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestQuote_NoDiscountAtThreshold(t *testing.T) {
	fare := decimal.NewFromInt(100)

	total, discounted := Quote(5, fare)

	assert.False(t, discounted)
	assert.True(t, total.Equal(decimal.NewFromInt(500)), "got %s", total)
}

func TestQuote_DiscountAboveThreshold(t *testing.T) {
	fare := decimal.NewFromInt(100)

	total, discounted := Quote(6, fare)

	assert.True(t, discounted)
	assert.True(t, total.Equal(decimal.NewFromInt(540)), "got %s", total)
}

func TestQuote_SingleSeat(t *testing.T) {
	fare, _ := decimal.NewFromString("249.99")

	total, discounted := Quote(1, fare)

	assert.False(t, discounted)
	assert.Equal(t, "249.99", total.StringFixed(2))
}

func TestQuote_DiscountRoundsToCents(t *testing.T) {
	// 7 * 33.35 = 233.45, minus 10% = 210.105, rounds to 210.11
	fare, _ := decimal.NewFromString("33.35")

	total, discounted := Quote(7, fare)

	assert.True(t, discounted)
	assert.Equal(t, "210.11", total.StringFixed(2))
}

func TestQuote_ExactDecimalArithmetic(t *testing.T) {
	// 0.10 + 0.20 style fares must not drift the way floats do
	fare, _ := decimal.NewFromString("0.10")

	total, discounted := Quote(3, fare)

	assert.False(t, discounted)
	assert.Equal(t, "0.30", total.StringFixed(2))
}
