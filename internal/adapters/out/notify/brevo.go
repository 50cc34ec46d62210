// Package notify delivers customer notifications over the Brevo
// transactional email API. A buffered dispatcher decouples delivery from the
// request path.
package notify

import (
	"context"
	"fmt"

	"logistics/internal/core/ports"

	brevo "github.com/sendinblue/APIv3-go-library/v2/lib"
)

// BrevoMailSender sends notifications as transactional emails through Brevo.
type BrevoMailSender struct {
	client      *brevo.APIClient
	senderName  string
	senderEmail string
}

// NewBrevoMailSender creates a mail sender using the given API key and sender
// identity.
func NewBrevoMailSender(apiKey, senderName, senderEmail string) *BrevoMailSender {
	cfg := brevo.NewConfiguration()
	cfg.AddDefaultHeader("api-key", apiKey)

	return &BrevoMailSender{
		client:      brevo.NewAPIClient(cfg),
		senderName:  senderName,
		senderEmail: senderEmail,
	}
}

// Notify sends one notification email synchronously.
func (s *BrevoMailSender) Notify(ctx context.Context, notification ports.Notification) error {
	email := brevo.SendSmtpEmail{
		Sender: &brevo.SendSmtpEmailSender{
			Name:  s.senderName,
			Email: s.senderEmail,
		},
		To: []brevo.SendSmtpEmailTo{
			{Name: notification.RecipientName, Email: notification.RecipientEmail},
		},
		Subject:     notification.Subject,
		HtmlContent: notification.Body,
	}

	_, _, err := s.client.TransactionalEmailsApi.SendTransacEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", notification.RecipientEmail, err)
	}

	return nil
}
