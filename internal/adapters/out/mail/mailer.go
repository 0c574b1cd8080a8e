// Package mail contains the outbound mail adapter. The default implementation
// writes messages to the structured log instead of an SMTP server; the relay
// marks notifications as sent either way, so swapping in a real transport is a
// composition change only.
package mail

import (
	"context"
	"log/slog"
)

// LogMailer implements ports.Mailer by logging each message.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a mailer that records messages on the given logger.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// Send logs the message and reports success.
func (m *LogMailer) Send(_ context.Context, recipient, subject, body string) error {
	m.logger.Info("sending mail",
		"recipient", recipient,
		"subject", subject,
		"body", body,
	)
	return nil
}
