package notification

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/Kane254/KBR-project/internal/config"
	"github.com/Kane254/KBR-project/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type MailNotifier struct {
	addr   string
	from   string
	auth   smtp.Auth
	logger logger.Logger
}

func NewMailNotifier(cfg config.MailConfig, logger logger.Logger) *MailNotifier {
	if cfg.Host == "" {
		logger.Warn("smtp host is empty, mail notifications disabled")
		return &MailNotifier{from: cfg.From, logger: logger}
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &MailNotifier{
		addr:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		from:   cfg.From,
		auth:   auth,
		logger: logger,
	}
}

func (n *MailNotifier) Send(ctx context.Context, m domain.Mail) error {
	if n.addr == "" {
		n.logger.Debug("mail skipped (smtp disabled)",
			logger.String("to", m.To),
			logger.String("subject", m.Subject),
		)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		n.from, m.To, m.Subject, m.Body,
	)

	if err := smtp.SendMail(n.addr, n.auth, n.from, []string{m.To}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	return nil
}
