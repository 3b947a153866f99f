package mailing

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// Resend delivers email through the Resend API.
type Resend struct {
	client *resend.Client
	from   string
}

func NewResend(from, apiKey string) *Resend {
	return &Resend{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (r *Resend) Send(ctx context.Context, email Email) error {
	req := &resend.SendEmailRequest{
		From:    r.from,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: r.from,
	}
	if email.Category != "" {
		req.Tags = []resend.Tag{{Name: "category", Value: email.Category}}
	}

	if _, err := r.client.Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("resend %s email to %q: %w", email.Category, email.To, err)
	}

	return nil
}
