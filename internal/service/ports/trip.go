package ports

import (
	"context"

	"github.com/Kane254/KBR-project/internal/domain"
)

type TripRepo interface {
	Create(ctx context.Context, t *domain.Trip) error
	GetByID(ctx context.Context, id string) (*domain.TripDetails, error)
	Search(ctx context.Context, filter domain.TripFilter) ([]*domain.TripDetails, error)
}
