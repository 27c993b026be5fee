package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Kane254/KBR-project/internal/domain"
	"github.com/Kane254/KBR-project/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo    ports.BookingRepo
	tripRepo       ports.TripRepo
	seatRepo       ports.SeatRepo
	userRepo       ports.UserRepo
	gateway        ports.PaymentGateway
	dispatcher     ports.MailDispatcher
	paymentTimeout time.Duration
	logger         logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	tripRepo ports.TripRepo,
	seatRepo ports.SeatRepo,
	userRepo ports.UserRepo,
	gateway ports.PaymentGateway,
	dispatcher ports.MailDispatcher,
	paymentTimeout time.Duration,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:    bookingRepo,
		tripRepo:       tripRepo,
		seatRepo:       seatRepo,
		userRepo:       userRepo,
		gateway:        gateway,
		dispatcher:     dispatcher,
		paymentTimeout: paymentTimeout,
		logger:         logger,
	}
}

// Book проводит попытку бронирования: валидация, захват мест, расчёт цены,
// авторизация платежа, запись. Любой сбой после захвата освобождает места —
// занятых мест без записи бронирования не остаётся.
func (s *BookingService) Book(ctx context.Context, tripID, userID string, seatIDs []string) (*domain.Booking, error) {
	seatIDs = dedupe(seatIDs)
	if len(seatIDs) == 0 {
		return nil, domain.ErrInvalidSelection
	}

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("check trip: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	if trip.AvailableSeats < len(seatIDs) {
		return nil, domain.ErrNoAvailableSeats
	}

	seats, err := s.seatRepo.Claim(ctx, tripID, seatIDs)
	if err != nil {
		return nil, fmt.Errorf("claim seats: %w", err)
	}

	total, discounted := domain.Quote(len(seats), trip.Fare)

	authCtx, cancel := context.WithTimeout(ctx, s.paymentTimeout)
	defer cancel()
	if err = s.gateway.Authorize(authCtx, userID, total); err != nil {
		// Отказ часто приходит вместе с отменой исходного контекста,
		// компенсация обязана пережить её.
		s.releaseSeats(context.WithoutCancel(ctx), tripID, seatIDs)
		s.logger.Warn("payment authorization failed",
			logger.String("trip_id", tripID),
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentDeclined, err)
	}

	booking := &domain.Booking{
		ID:              uuid.New().String(),
		UserID:          userID,
		TripID:          tripID,
		SeatNumbers:     seatNumbers(seats),
		TotalPrice:      total,
		DiscountApplied: discounted,
		PaymentStatus:   domain.PaymentStatusCompleted,
		CreatedAt:       time.Now().UTC(),
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		s.releaseSeats(context.WithoutCancel(ctx), tripID, seatIDs)
		return nil, fmt.Errorf("persist booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("trip_id", tripID),
		logger.String("user_id", userID),
		logger.Int("seats", len(seats)),
		logger.String("total_price", total.StringFixed(2)),
	)

	s.dispatcher.Enqueue(confirmationMail(user, trip, booking))

	return booking, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	return s.bookingRepo.ListByUser(ctx, userID)
}

// releaseSeats — компенсация после неудачной оплаты или записи. Ошибка здесь
// означает зависшее занятое место, поэтому логируем с полным контекстом.
func (s *BookingService) releaseSeats(ctx context.Context, tripID string, seatIDs []string) {
	if err := s.seatRepo.Release(ctx, tripID, seatIDs); err != nil {
		s.logger.Error("failed to release claimed seats",
			logger.String("trip_id", tripID),
			logger.Any("seat_ids", seatIDs),
			logger.String("error", err.Error()),
		)
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	res := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res
}

func seatNumbers(seats []domain.Seat) []int {
	res := make([]int, len(seats))
	for i, s := range seats {
		res[i] = s.SeatNumber
	}
	return res
}

func confirmationMail(user *domain.User, trip *domain.TripDetails, b *domain.Booking) domain.Mail {
	numbers := make([]string, len(b.SeatNumbers))
	for i, n := range b.SeatNumbers {
		numbers[i] = fmt.Sprintf("%d", n)
	}

	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your booking for bus '%s' on route '%s to %s' departing at %s has been confirmed!\n\n"+
			"Seats Booked: %s\n"+
			"Number of Seats: %d\n"+
			"Total Price: Ksh %s\n",
		user.Username,
		trip.BusNumber, trip.Origin, trip.Destination,
		trip.DepartureTime.Format("2006-01-02 15:04"),
		strings.Join(numbers, ", "),
		len(b.SeatNumbers),
		b.TotalPrice.StringFixed(2),
	)
	if b.DiscountApplied {
		body += "A 10% discount was applied to your booking!\n"
	}
	body += "\nThank you for choosing our service!"

	return domain.Mail{
		To:      user.Email,
		Subject: fmt.Sprintf("Your Bus Booking Confirmation - %s", trip.BusNumber),
		Body:    body,
	}
}
