package ports

import "github.com/Kane254/KBR-project/internal/domain"

// MailDispatcher queues mail for asynchronous delivery. Enqueue never
// blocks and never fails the caller; delivery is best-effort.
type MailDispatcher interface {
	Enqueue(mail domain.Mail)
}
