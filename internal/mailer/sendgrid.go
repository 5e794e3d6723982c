package mailer

import (
	"context"
	"fmt"

	"rental-booking/pkg/utils"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// SendGridNotifier sends notifications through the SendGrid API.
type SendGridNotifier struct {
	apiKey    string
	fromEmail string
	fromName  string
	log       *zap.Logger
}

func NewSendGridNotifier(config utils.EmailConfig, log *zap.Logger) *SendGridNotifier {
	return &SendGridNotifier{
		apiKey:    config.SendGridAPIKey,
		fromEmail: config.FromEmail,
		fromName:  config.FromName,
		log:       log.With(zap.String("mailer", "sendgrid")),
	}
}

func (n *SendGridNotifier) SendStatusChange(ctx context.Context, email StatusChangeEmail) error {
	if n.apiKey == "" || n.fromEmail == "" {
		return fmt.Errorf("sendgrid is not configured")
	}

	from := mail.NewEmail(n.fromName, n.fromEmail)
	to := mail.NewEmail(email.CustomerName, email.RecipientEmail)
	message := mail.NewSingleEmail(from, email.Subject(), to, email.PlainBody(), email.HTMLBody())

	client := sendgrid.NewSendClient(n.apiKey)
	resp, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("send status change email to %s: %w", email.RecipientEmail, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}

	n.log.Info("Status change email sent",
		zap.String("recipient", email.RecipientEmail),
		zap.String("booking_reference", email.BookingReference),
		zap.String("new_status", email.NewStatus),
	)

	return nil
}
