package ports

import "context"

// Mailer delivers the external (email-equivalent) copy of a notification.
// Delivery is best-effort and happens outside the lifecycle transaction; the
// persisted notification is the system of record.
type Mailer interface {
	Send(ctx context.Context, recipient, subject, body string) error
}
