// using SendGrid's Go Library
// https://github.com/sendgrid/sendgrid-go
package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"hearth/internal/config"
)

type sendGridMailer struct {
	client *sendgrid.Client
	from   *mail.Email
}

func newSendGridMailer(cfg config.MailConfig) *sendGridMailer {
	return &sendGridMailer{
		client: sendgrid.NewSendClient(cfg.SendGridKey),
		from:   mail.NewEmail(cfg.FromName, cfg.From),
	}
}

func (m *sendGridMailer) Share(ctx context.Context, to, subject, plainText, htmlBody string) error {
	message := mail.NewSingleEmail(m.from, subject, mail.NewEmail("", to), plainText, htmlBody)
	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("mail rejected with status %d: %s", response.StatusCode, response.Body)
	}
	slog.InfoContext(ctx, "shared recipe by mail", "to", to, "status", response.StatusCode)
	return nil
}
