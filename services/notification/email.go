package notification

import (
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"slowday/utils"
)

// Mailer sends a single HTML email.
type Mailer interface {
	Send(to, subject, html string) error
}

// SendGridMailer is the production Mailer.
type SendGridMailer struct {
	APIKey    string
	FromEmail string
	FromName  string
}

func NewSendGridMailer(apiKey, fromEmail string) *SendGridMailer {
	return &SendGridMailer{
		APIKey:    apiKey,
		FromEmail: fromEmail,
		FromName:  "SlowDay Deals",
	}
}

// Send delivers one email. Missing configuration or an unusable target
// downgrades to a logged skip so callers never need to care.
func (m *SendGridMailer) Send(to, subject, html string) error {
	if m.APIKey == "" || to == "" || !strings.Contains(to, "@") {
		utils.GetLogger().Info("email skipped",
			zap.String("to", to), zap.String("subject", subject))
		return nil
	}

	from := mail.NewEmail(m.FromName, m.FromEmail)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), "", html)

	client := sendgrid.NewSendClient(m.APIKey)
	resp, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected message: status %d", resp.StatusCode)
	}
	return nil
}
