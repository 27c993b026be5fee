package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Kane254/KBR-project/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type SeatRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSeatRepo(db *dbpg.DB) *SeatRepository {
	return &SeatRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// EnsureProvisioned гарантирует ровно capacity мест для рейса; повторный
// вызов и гонки первых просмотров безопасны за счёт ON CONFLICT DO NOTHING.
func (r *SeatRepository) EnsureProvisioned(ctx context.Context, tripID string, capacity int) error {
	query := `INSERT INTO seats (id, trip_id, seat_number, booked)
			  SELECT gen_random_uuid(), $1, n, FALSE
			  FROM generate_series(1, $2) AS n
			  ON CONFLICT (trip_id, seat_number) DO NOTHING`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, tripID, capacity)
	if err != nil {
		return fmt.Errorf("provision seats: %w", err)
	}

	return nil
}

func (r *SeatRepository) ListByTrip(ctx context.Context, tripID string) ([]domain.Seat, error) {
	query := `SELECT id, trip_id, seat_number, booked
			  FROM seats
			  WHERE trip_id = $1
			  ORDER BY seat_number ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("list seats: %w", err)
	}
	defer rows.Close()

	var res []domain.Seat
	for rows.Next() {
		var s domain.Seat
		if err = rows.Scan(&s.ID, &s.TripID, &s.SeatNumber, &s.Booked); err != nil {
			return nil, fmt.Errorf("scan seat: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

// Claim атомарно помечает все запрошенные места занятыми. Блокирует строки
// FOR UPDATE: из двух конкурирующих заявок на пересекающиеся места выигрывает
// ровно одна, вторая получает ErrSeatUnavailable без частичного эффекта.
func (r *SeatRepository) Claim(ctx context.Context, tripID string, seatIDs []string) ([]domain.Seat, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT id, trip_id, seat_number, booked
			  FROM seats
			  WHERE trip_id = $1 AND id = ANY($2)
			  ORDER BY seat_number ASC
			  FOR UPDATE`
	rows, err := tx.QueryContext(ctx, query, tripID, pq.Array(seatIDs))
	if err != nil {
		return nil, fmt.Errorf("lock seats: %w", err)
	}

	var seats []domain.Seat
	for rows.Next() {
		var s domain.Seat
		if err = rows.Scan(&s.ID, &s.TripID, &s.SeatNumber, &s.Booked); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan seat: %w", err)
		}
		seats = append(seats, s)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("read seats: %w", err)
	}
	rows.Close()

	// Места, не принадлежащие рейсу или несуществующие, в выборку не попали.
	if len(seats) != len(seatIDs) {
		return nil, domain.ErrSeatUnavailable
	}
	for _, s := range seats {
		if s.Booked {
			return nil, domain.ErrSeatUnavailable
		}
	}

	update := `UPDATE seats SET booked = TRUE WHERE id = ANY($1)`
	if _, err = tx.ExecContext(ctx, update, pq.Array(seatIDs)); err != nil {
		return nil, fmt.Errorf("mark seats booked: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit claim: %w", err)
	}

	for i := range seats {
		seats[i].Booked = true
	}

	return seats, nil
}

// Release возвращает места в свободное состояние (компенсация при откате).
func (r *SeatRepository) Release(ctx context.Context, tripID string, seatIDs []string) error {
	query := `UPDATE seats SET booked = FALSE
			  WHERE trip_id = $1 AND id = ANY($2)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, tripID, pq.Array(seatIDs))
	if err != nil {
		return fmt.Errorf("release seats: %w", err)
	}

	return nil
}
