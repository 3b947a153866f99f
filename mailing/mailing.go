package mailing

import (
	"context"
	"log/slog"
)

// Sender delivers transactional email.
type Sender interface {
	Send(ctx context.Context, email Email) error
}

// Email is a rendered message ready to send.
type Email struct {
	To       string
	Subject  string
	HTML     string
	Text     string
	Category string
}

// Log only logs the email it was asked to send.
// It stands in for Resend when no API key is configured.
type Log struct {
	Logger *slog.Logger
}

func (l *Log) Send(ctx context.Context, email Email) error {
	l.Logger.InfoContext(ctx, "email not sent, mailing disabled",
		"to", email.To,
		"subject", email.Subject,
		"category", email.Category,
	)
	return nil
}
