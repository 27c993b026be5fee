package dispatcher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Kane254/KBR-project/internal/dispatcher/mocks"
	"github.com/Kane254/KBR-project/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testStrategy() retry.Strategy {
	return retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 1}
}

func TestDispatcher_DeliversEnqueuedMail(t *testing.T) {
	sender := mocks.NewMockSender(t)
	d := New(sender, 4, testStrategy(), newTestLogger(t))

	mail := domain.Mail{To: "alice@example.com", Subject: "Hi", Body: "Hello"}

	delivered := make(chan struct{})
	sender.EXPECT().Send(mock.Anything, mail).Run(func(ctx context.Context, m domain.Mail) {
		close(delivered)
	}).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Start(ctx)

	d.Enqueue(mail)

	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("mail was not delivered")
	}
}

func TestDispatcher_RetriesTransientFailure(t *testing.T) {
	sender := mocks.NewMockSender(t)
	d := New(sender, 4, testStrategy(), newTestLogger(t))

	mail := domain.Mail{To: "alice@example.com", Subject: "Hi"}

	delivered := make(chan struct{})
	sender.EXPECT().Send(mock.Anything, mail).Return(errors.New("smtp down")).Twice()
	sender.EXPECT().Send(mock.Anything, mail).Run(func(ctx context.Context, m domain.Mail) {
		close(delivered)
	}).Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Start(ctx)

	d.Enqueue(mail)

	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("mail was not delivered after retries")
	}
}

func TestDispatcher_DropsUndeliverableAndContinues(t *testing.T) {
	sender := mocks.NewMockSender(t)
	d := New(sender, 4, testStrategy(), newTestLogger(t))

	bad := domain.Mail{To: "bad@example.com", Subject: "Bad"}
	good := domain.Mail{To: "good@example.com", Subject: "Good"}

	delivered := make(chan struct{})
	sender.EXPECT().Send(mock.Anything, bad).Return(errors.New("mailbox gone")).Times(3)
	sender.EXPECT().Send(mock.Anything, good).Run(func(ctx context.Context, m domain.Mail) {
		close(delivered)
	}).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Start(ctx)

	d.Enqueue(bad)
	d.Enqueue(good)

	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("dispatcher stalled on undeliverable mail")
	}
}

func TestDispatcher_EnqueueNeverBlocks(t *testing.T) {
	sender := mocks.NewMockSender(t)
	d := New(sender, 1, testStrategy(), newTestLogger(t))

	// диспетчер не запущен, очередь на одно письмо
	d.Enqueue(domain.Mail{To: "a@example.com"})
	d.Enqueue(domain.Mail{To: "b@example.com"})

	assert.Equal(t, 1, len(d.queue))
}

func TestDispatcher_StopsOnContextCancel(t *testing.T) {
	sender := mocks.NewMockSender(t)
	d := New(sender, 4, testStrategy(), newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		d.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop on context cancel")
	}
}
