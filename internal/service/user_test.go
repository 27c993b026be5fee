package service

import (
	"context"
	"testing"

	"github.com/Kane254/KBR-project/internal/domain"
	"github.com/Kane254/KBR-project/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	dispatcher := mocks.NewMockMailDispatcher(t)
	svc := NewUserService(repo, dispatcher)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	dispatcher.EXPECT().Enqueue(mock.Anything).Run(func(mail domain.Mail) {
		assert.Equal(t, "alice@example.com", mail.To)
		assert.Equal(t, "Welcome to BusBook!", mail.Subject)
	}).Return()

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
}

func TestUserService_Create_MissingUsername(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	dispatcher := mocks.NewMockMailDispatcher(t)
	svc := NewUserService(repo, dispatcher)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Email: "alice@example.com",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_InvalidEmail(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	dispatcher := mocks.NewMockMailDispatcher(t)
	svc := NewUserService(repo, dispatcher)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username: "alice",
		Email:    "not-an-email",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_UsernameTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	dispatcher := mocks.NewMockMailDispatcher(t)
	svc := NewUserService(repo, dispatcher)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
	})

	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserService_List(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	dispatcher := mocks.NewMockMailDispatcher(t)
	svc := NewUserService(repo, dispatcher)

	users := []*domain.User{{ID: "u1", Username: "alice"}}
	repo.EXPECT().List(mock.Anything).Return(users, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, users, got)
}
