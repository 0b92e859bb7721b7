package notification

import (
	"context"

	"go.uber.org/zap"

	"slowday/models"
	"slowday/utils"
)

// Deliverer fans one queued payload out to its email and SMS channels.
// Channel failures are logged and do not abort the other channel.
type Deliverer struct {
	Mailer Mailer
	SMS    SMSSender
}

func (d *Deliverer) Deliver(ctx context.Context, p models.NotificationPayload) {
	logger := utils.GetLogger()

	if p.Email != "" {
		subject, html := RenderEmail(p)
		if err := d.Mailer.Send(p.Email, subject, html); err != nil {
			logger.Warn("notification email failed",
				zap.String("kind", p.Kind), zap.String("to", p.Email), zap.Error(err))
		}
	}

	if p.Phone != "" {
		if body := RenderSMS(p); body != "" {
			if err := d.SMS.Send(p.Phone, body); err != nil {
				logger.Warn("notification sms failed",
					zap.String("kind", p.Kind), zap.String("to", p.Phone), zap.Error(err))
			}
		}
	}
}
