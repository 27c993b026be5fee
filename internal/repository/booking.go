package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Kane254/KBR-project/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create пишет бронирование, строки мест и декремент счётчика рейса одной
// транзакцией. Уникальный индекс booking_seats(trip_id, seat_number) —
// вторая линия защиты от двойного бронирования поверх флага места.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO bookings (id, user_id, trip_id, total_price, discount_applied, payment_status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = tx.ExecContext(
		ctx, query, b.ID, b.UserID, b.TripID,
		b.TotalPrice, b.DiscountApplied, b.PaymentStatus, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	seatsQuery := `INSERT INTO booking_seats (booking_id, trip_id, seat_number)
				   SELECT $1, $2, n FROM unnest($3::int[]) AS n`
	_, err = tx.ExecContext(ctx, seatsQuery, b.ID, b.TripID, pq.Array(b.SeatNumbers))
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSeatUnavailable
		}
		return fmt.Errorf("insert booking seats: %w", err)
	}

	// Счётчик не уходит в минус: guard в WHERE вместо CHECK-гонки.
	counterQuery := `UPDATE trips
					 SET available_seats = available_seats - $2
					 WHERE id = $1 AND available_seats >= $2`
	res, err := tx.ExecContext(ctx, counterQuery, b.TripID, len(b.SeatNumbers))
	if err != nil {
		return fmt.Errorf("decrement available seats: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("counter rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNoAvailableSeats
	}

	return tx.Commit()
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT b.id, b.user_id, b.trip_id, b.total_price, b.discount_applied,
					 b.payment_status, b.created_at,
					 array_agg(bs.seat_number ORDER BY bs.seat_number) AS seat_numbers
			  FROM bookings b
			  JOIN booking_seats bs ON bs.booking_id = b.id
			  WHERE b.user_id = $1
			  GROUP BY b.id
			  ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		var seatNumbers pq.Int64Array
		if err = rows.Scan(
			&b.ID, &b.UserID, &b.TripID, &b.TotalPrice,
			&b.DiscountApplied, &b.PaymentStatus, &b.CreatedAt, &seatNumbers,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		b.SeatNumbers = make([]int, len(seatNumbers))
		for i, n := range seatNumbers {
			b.SeatNumbers[i] = int(n)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
