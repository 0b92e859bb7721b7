package models

// NotificationPayload is the envelope carried through the async
// notification queue. Kind selects the template; the denormalized
// fields let the worker render without further lookups.
type NotificationPayload struct {
	Kind string `json:"kind"`

	BookingID     string  `json:"bookingId,omitempty"`
	ServiceType   string  `json:"serviceType,omitempty"`
	ProviderName  string  `json:"providerName,omitempty"`
	Location      string  `json:"location,omitempty"`
	CustomerName  string  `json:"customerName,omitempty"`
	PreferredTime string  `json:"preferredTime,omitempty"` // RFC 3339
	Price         float64 `json:"price,omitempty"`
	Notes         string  `json:"notes,omitempty"`

	// Delivery targets. Either may be empty; the worker skips the
	// corresponding channel.
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	// SetupLink is set for provider onboarding notifications.
	SetupLink string `json:"setupLink,omitempty"`

	// PendingCount is set for the daily provider digest.
	PendingCount int `json:"pendingCount,omitempty"`
}

// Notification kinds handled by the worker.
const (
	NotifyKindProviderNewBooking  = "provider_new_booking"
	NotifyKindCustomerConfirmed   = "customer_confirmed"
	NotifyKindCustomerRejected    = "customer_rejected"
	NotifyKindCustomerRescheduled = "customer_rescheduled"
	NotifyKindProviderCancelled   = "provider_cancelled"
	NotifyKindProviderSetupLink   = "provider_setup_link"
	NotifyKindProviderDigest      = "provider_digest"
)
