package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Kane254/KBR-project/internal/domain"
	"github.com/Kane254/KBR-project/internal/service/ports"
	"github.com/google/uuid"
)

type UserService struct {
	repo       ports.UserRepo
	dispatcher ports.MailDispatcher
}

func NewUserService(repo ports.UserRepo, dispatcher ports.MailDispatcher) *UserService {
	return &UserService{
		repo:       repo,
		dispatcher: dispatcher,
	}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if input.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if !strings.Contains(input.Email, "@") {
		return nil, fmt.Errorf("%w: email is invalid", domain.ErrValidation)
	}

	user := &domain.User{
		ID:        uuid.New().String(),
		Username:  input.Username,
		Email:     input.Email,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.dispatcher.Enqueue(welcomeMail(user))

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func welcomeMail(user *domain.User) domain.Mail {
	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"Thank you for registering with BusBook! We're excited to have you on board.\n"+
			"You can now explore bus routes and book your tickets.\n\n"+
			"Best regards,\n"+
			"The BusBook Team",
		user.Username,
	)

	return domain.Mail{
		To:      user.Email,
		Subject: "Welcome to BusBook!",
		Body:    body,
	}
}
