package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentGateway authorizes a charge for a booking attempt. Any error,
// including a context deadline, counts as a declined authorization.
type PaymentGateway interface {
	Authorize(ctx context.Context, userID string, amount decimal.Decimal) error
}
