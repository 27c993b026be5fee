package payment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestSimulator_Authorize_Approves(t *testing.T) {
	s := NewSimulator(10*time.Millisecond, newTestLogger(t))

	err := s.Authorize(context.Background(), "u1", decimal.NewFromInt(500))

	require.NoError(t, err)
}

func TestSimulator_Authorize_ContextDeadline(t *testing.T) {
	s := NewSimulator(time.Second, newTestLogger(t))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := s.Authorize(ctx, "u1", decimal.NewFromInt(500))

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
