package ports

import (
	"context"

	"github.com/Kane254/KBR-project/internal/domain"
)

type RouteRepo interface {
	Create(ctx context.Context, route *domain.Route) error
	GetByID(ctx context.Context, id string) (*domain.Route, error)
	List(ctx context.Context) ([]*domain.Route, error)
}

type BusRepo interface {
	Create(ctx context.Context, bus *domain.Bus) error
	GetByID(ctx context.Context, id string) (*domain.Bus, error)
	List(ctx context.Context) ([]*domain.Bus, error)
}
