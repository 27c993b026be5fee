package ports

import (
	"context"

	"github.com/Kane254/KBR-project/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}
