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

type TripRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTripRepo(db *dbpg.DB) *TripRepository {
	return &TripRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TripRepository) Create(ctx context.Context, t *domain.Trip) error {
	query := `INSERT INTO trips (id, bus_id, route_id, departure_time, fare, available_seats, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		t.ID, t.BusID, t.RouteID, t.DepartureTime, t.Fare, t.AvailableSeats, t.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrTripConflict
		}
		return fmt.Errorf("insert trip: %w", err)
	}

	return nil
}

func (r *TripRepository) GetByID(ctx context.Context, id string) (*domain.TripDetails, error) {
	query := `SELECT t.id, t.bus_id, t.route_id, t.departure_time, t.fare, t.available_seats, t.created_at,
					 r.origin, r.destination, b.bus_number, b.capacity
			  FROM trips t
			  JOIN routes r ON r.id = t.route_id
			  JOIN buses b ON b.id = t.bus_id
			  WHERE t.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}

	var t domain.TripDetails
	if err = row.Scan(
		&t.ID, &t.BusID, &t.RouteID, &t.DepartureTime, &t.Fare, &t.AvailableSeats, &t.CreatedAt,
		&t.Origin, &t.Destination, &t.BusNumber, &t.Capacity,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTripNotFound
		}
		return nil, fmt.Errorf("scan trip: %w", err)
	}

	return &t, nil
}

// Search возвращает предстоящие рейсы каталога, ближайшие первыми.
func (r *TripRepository) Search(ctx context.Context, filter domain.TripFilter) ([]*domain.TripDetails, error) {
	query := `SELECT t.id, t.bus_id, t.route_id, t.departure_time, t.fare, t.available_seats, t.created_at,
					 r.origin, r.destination, b.bus_number, b.capacity
			  FROM trips t
			  JOIN routes r ON r.id = t.route_id
			  JOIN buses b ON b.id = t.bus_id
			  WHERE t.departure_time >= NOW()
				AND ($1 = '' OR r.origin ILIKE '%' || $1 || '%')
				AND ($2 = '' OR r.destination ILIKE '%' || $2 || '%')
				AND ($3::date IS NULL OR (t.departure_time AT TIME ZONE 'UTC')::date = $3::date)
			  ORDER BY t.departure_time ASC`

	var date sql.NullTime
	if filter.Date != nil {
		date = sql.NullTime{Time: *filter.Date, Valid: true}
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, filter.Origin, filter.Destination, date)
	if err != nil {
		return nil, fmt.Errorf("search trips: %w", err)
	}
	defer rows.Close()

	var res []*domain.TripDetails
	for rows.Next() {
		var t domain.TripDetails
		if err = rows.Scan(
			&t.ID, &t.BusID, &t.RouteID, &t.DepartureTime, &t.Fare, &t.AvailableSeats, &t.CreatedAt,
			&t.Origin, &t.Destination, &t.BusNumber, &t.Capacity,
		); err != nil {
			return nil, fmt.Errorf("scan trip: %w", err)
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}
