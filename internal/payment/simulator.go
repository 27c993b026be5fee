package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

// Simulator is the stand-in payment gateway: it approves every charge
// after an artificial processing delay. A real gateway replaces it via
// ports.PaymentGateway; the caller's context deadline still applies.
type Simulator struct {
	delay  time.Duration
	logger logger.Logger
}

func NewSimulator(delay time.Duration, logger logger.Logger) *Simulator {
	return &Simulator{
		delay:  delay,
		logger: logger,
	}
}

func (s *Simulator) Authorize(ctx context.Context, userID string, amount decimal.Decimal) error {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	s.logger.Info("payment authorized",
		logger.String("user_id", userID),
		logger.String("amount", amount.StringFixed(2)),
	)

	return nil
}
