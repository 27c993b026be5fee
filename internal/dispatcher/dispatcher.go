package dispatcher

import (
	"context"

	"github.com/Kane254/KBR-project/internal/domain"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

// Sender выполняет фактическую доставку одного письма.
type Sender interface {
	Send(ctx context.Context, m domain.Mail) error
}

// Dispatcher доставляет письма асинхронно: бронирование никогда не ждёт
// SMTP и не откатывается из-за него. Недоставленное после ретраев письмо
// теряется с записью в лог.
type Dispatcher struct {
	sender   Sender
	queue    chan domain.Mail
	strategy retry.Strategy
	logger   logger.Logger
}

func New(
	sender Sender,
	queueSize int,
	strategy retry.Strategy,
	logger logger.Logger,
) *Dispatcher {
	return &Dispatcher{
		sender:   sender,
		queue:    make(chan domain.Mail, queueSize),
		strategy: strategy,
		logger:   logger,
	}
}

// Enqueue не блокируется: при переполненной очереди письмо отбрасывается.
func (d *Dispatcher) Enqueue(m domain.Mail) {
	select {
	case d.queue <- m:
	default:
		d.logger.Warn("mail queue full, dropping message",
			logger.String("to", m.To),
			logger.String("subject", m.Subject),
		)
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	d.logger.Info("mail dispatcher started",
		logger.Int("queue_size", cap(d.queue)),
	)

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("mail dispatcher stopped")
			return
		case m := <-d.queue:
			d.deliver(ctx, m)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, m domain.Mail) {
	err := retry.Do(func() error {
		return d.sender.Send(ctx, m)
	}, d.strategy)
	if err != nil {
		d.logger.Error("failed to deliver mail",
			logger.String("to", m.To),
			logger.String("subject", m.Subject),
			logger.String("error", err.Error()),
		)
		return
	}

	d.logger.Debug("mail delivered",
		logger.String("to", m.To),
		logger.String("subject", m.Subject),
	)
}
