package ports

import (
	"context"

	"github.com/Kane254/KBR-project/internal/domain"
)

type SeatRepo interface {
	EnsureProvisioned(ctx context.Context, tripID string, capacity int) error
	ListByTrip(ctx context.Context, tripID string) ([]domain.Seat, error)
	Claim(ctx context.Context, tripID string, seatIDs []string) ([]domain.Seat, error)
	Release(ctx context.Context, tripID string, seatIDs []string) error
}
