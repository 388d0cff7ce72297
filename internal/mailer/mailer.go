// Package mailer handles outbound candidate notifications.
package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// Mailer delivers a plain-text email through an external transport
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// ResendMailer implements Mailer on the Resend API
type ResendMailer struct {
	client *resend.Client
	from   string
}

// NewResendMailer creates a mailer for the given API key and sender address
func NewResendMailer(apiKey, from string) (*ResendMailer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Resend API key is required")
	}
	if from == "" {
		from = "Applicant Intake <onboarding@resend.dev>"
	}
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}, nil
}

// Send delivers a plain-text email, returning an error on transport failure
func (m *ResendMailer) Send(ctx context.Context, to, subject, body string) error {
	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
