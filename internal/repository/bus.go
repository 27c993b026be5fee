package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Kane254/KBR-project/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BusRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBusRepo(db *dbpg.DB) *BusRepository {
	return &BusRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BusRepository) Create(ctx context.Context, bus *domain.Bus) error {
	query := `INSERT INTO buses (id, bus_number, capacity, route_id, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		bus.ID, bus.BusNumber, bus.Capacity, bus.RouteID, bus.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrBusNumberTaken
		}
		return fmt.Errorf("insert bus: %w", err)
	}

	return nil
}

func (r *BusRepository) GetByID(ctx context.Context, id string) (*domain.Bus, error) {
	query := `SELECT id, bus_number, capacity, route_id, created_at
			  FROM buses
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get bus: %w", err)
	}

	var bus domain.Bus
	if err = row.Scan(&bus.ID, &bus.BusNumber, &bus.Capacity, &bus.RouteID, &bus.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBusNotFound
		}
		return nil, fmt.Errorf("scan bus: %w", err)
	}

	return &bus, nil
}

func (r *BusRepository) List(ctx context.Context) ([]*domain.Bus, error) {
	query := `SELECT id, bus_number, capacity, route_id, created_at
			  FROM buses
			  ORDER BY bus_number`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list buses: %w", err)
	}
	defer rows.Close()

	var res []*domain.Bus
	for rows.Next() {
		var bus domain.Bus
		if err = rows.Scan(&bus.ID, &bus.BusNumber, &bus.Capacity, &bus.RouteID, &bus.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bus: %w", err)
		}
		res = append(res, &bus)
	}

	return res, rows.Err()
}
