package notification

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"slowday/utils"
)

// SMSSender sends a single text message.
type SMSSender interface {
	Send(to, body string) error
}

// TwilioSender is the production SMSSender.
type TwilioSender struct {
	client    *twilio.RestClient
	fromPhone string
	enabled   bool
}

func NewTwilioSender(accountSID, authToken, fromPhone string) *TwilioSender {
	return &TwilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		fromPhone: fromPhone,
		enabled:   accountSID != "" && authToken != "" && fromPhone != "",
	}
}

// normalizePhone strips formatting and defaults to a +1 country code.
// Returns "" when the number is too short to dial.
func normalizePhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	if digits.Len() < 10 {
		return ""
	}
	if strings.HasPrefix(raw, "+") {
		return raw
	}
	return "+1" + digits.String()
}

// Send delivers one SMS. Disabled configuration or an undialable number
// downgrades to a logged skip.
func (s *TwilioSender) Send(to, body string) error {
	phone := normalizePhone(to)
	if !s.enabled || phone == "" {
		utils.GetLogger().Info("sms skipped", zap.String("to", to))
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(s.fromPhone)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send failed: %w", err)
	}
	return nil
}
