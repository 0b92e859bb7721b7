package notification

import (
	"fmt"
	"time"

	"slowday/models"
)

func formatPreferredTime(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format("Monday, January 2, 2006 at 3:04 PM")
}

func baseTemplate(content string) string {
	return fmt.Sprintf(`<div style="font-family:-apple-system,sans-serif;max-width:560px;margin:0 auto;padding:24px;">
<h1 style="font-size:22px;">SlowDay Deals</h1>
<div style="background:#f8f9ff;padding:24px;border-radius:12px;">%s</div>
<p style="color:#aaa;font-size:12px;">SlowDay Deals — book services at special prices</p>
</div>`, content)
}

// RenderEmail returns the subject and HTML body for a payload kind.
func RenderEmail(p models.NotificationPayload) (subject, html string) {
	when := formatPreferredTime(p.PreferredTime)

	switch p.Kind {
	case models.NotifyKindProviderNewBooking:
		subject = fmt.Sprintf("New Booking – %s", p.ServiceType)
		html = baseTemplate(fmt.Sprintf(
			`<h2>New booking request</h2>
<p>%s wants to book %s on %s for $%.0f.</p>
<p>Open the SlowDay Deals app to confirm or reschedule.</p>`,
			p.CustomerName, p.ServiceType, when, p.Price))
	case models.NotifyKindCustomerConfirmed:
		subject = fmt.Sprintf("Booking Confirmed – %s", p.ServiceType)
		html = baseTemplate(fmt.Sprintf(
			`<h2>Booking confirmed</h2>
<p>Your %s with %s at %s is confirmed for %s. Price: $%.0f.</p>`,
			p.ServiceType, p.ProviderName, p.Location, when, p.Price))
	case models.NotifyKindCustomerRejected:
		subject = fmt.Sprintf("Booking Update – %s", p.ServiceType)
		html = baseTemplate(fmt.Sprintf(
			`<h2>Booking not confirmed</h2>
<p>Unfortunately your %s booking with %s could not be accommodated. You have not been charged.</p>`,
			p.ServiceType, p.ProviderName))
	case models.NotifyKindCustomerRescheduled:
		subject = fmt.Sprintf("Booking Rescheduled – %s", p.ServiceType)
		html = baseTemplate(fmt.Sprintf(
			`<h2>New time proposed</h2>
<p>%s proposed a new time for your %s booking: %s.</p>`,
			p.ProviderName, p.ServiceType, when))
	case models.NotifyKindProviderCancelled:
		subject = fmt.Sprintf("Booking Cancelled – %s", p.ServiceType)
		html = baseTemplate(fmt.Sprintf(
			`<h2>Booking cancelled</h2>
<p>%s cancelled their %s booking for %s.</p>`,
			p.CustomerName, p.ServiceType, when))
	case models.NotifyKindProviderSetupLink:
		subject = "Your SlowDay Deals listing is ready"
		html = baseTemplate(fmt.Sprintf(
			`<h2>Welcome, %s!</h2>
<p>Your deal listing has been created. Set your password to activate it:</p>
<p><a href="%s">%s</a></p>
<p>This link expires in 30 days.</p>`,
			p.ProviderName, p.SetupLink, p.SetupLink))
	case models.NotifyKindProviderDigest:
		subject = "Pending bookings waiting for you"
		html = baseTemplate(fmt.Sprintf(
			`<h2>Daily summary</h2>
<p>You have %d pending booking request(s) for your %s deal. Open the app to confirm them.</p>`,
			p.PendingCount, p.ServiceType))
	default:
		subject = "SlowDay Deals"
		html = baseTemplate("<p>You have a new update on SlowDay Deals.</p>")
	}
	return subject, html
}

// RenderSMS returns the text body for a payload kind, or "" when the
// kind has no SMS channel.
func RenderSMS(p models.NotificationPayload) string {
	when := formatPreferredTime(p.PreferredTime)

	switch p.Kind {
	case models.NotifyKindProviderNewBooking:
		return fmt.Sprintf("SlowDay Deals: New booking! %s wants %s on %s. $%.0f. Open app to confirm.",
			p.CustomerName, p.ServiceType, when, p.Price)
	case models.NotifyKindCustomerConfirmed:
		return fmt.Sprintf("SlowDay Deals: Your %s with %s is CONFIRMED for %s. See you then!",
			p.ServiceType, p.ProviderName, when)
	case models.NotifyKindCustomerRejected:
		return fmt.Sprintf("SlowDay Deals: Your %s booking with %s was not confirmed.",
			p.ServiceType, p.ProviderName)
	case models.NotifyKindCustomerRescheduled:
		return fmt.Sprintf("SlowDay Deals: %s proposed a new time for your %s booking: %s.",
			p.ProviderName, p.ServiceType, when)
	case models.NotifyKindProviderCancelled:
		return fmt.Sprintf("SlowDay Deals: %s cancelled their %s booking for %s.",
			p.CustomerName, p.ServiceType, when)
	case models.NotifyKindProviderDigest:
		return fmt.Sprintf("SlowDay Deals: You have %d pending booking request(s). Open the app to confirm.",
			p.PendingCount)
	}
	return ""
}
