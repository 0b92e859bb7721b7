package notification

import (
	"slowday/models"
)

// NotificationService dispatches lifecycle side effects. Every method is
// fire-and-forget: failures are logged at the dispatcher boundary and
// never surface to the operation that triggered them.
type NotificationService interface {
	NotifyProviderNewBooking(booking *models.Booking, service *models.Service, customerName string)
	NotifyCustomerConfirmed(booking *models.Booking, service *models.Service, email, phone string)
	NotifyCustomerRejected(booking *models.Booking, service *models.Service, email, phone string)
	NotifyCustomerRescheduled(booking *models.Booking, service *models.Service, email, phone string)
	NotifyProviderCancelled(booking *models.Booking, service *models.Service, customerName string)
	NotifyProviderSetupLink(email, businessName, setupLink string)
	NotifyProviderDigest(service *models.Service, pendingCount int)
}
