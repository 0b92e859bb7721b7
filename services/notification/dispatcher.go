package notification

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"slowday/models"
	"slowday/services/tasks"
	"slowday/utils"
)

// phoneLike matches contact strings dialable as SMS targets.
var phoneLike = regexp.MustCompile(`^\+?[\d\s\-()+]{7,}$`)

// QueueDispatcher implements NotificationService by enqueueing tasks on
// the notification queue. Enqueueing is time-boxed so a dead Redis never
// stalls a booking request.
type QueueDispatcher struct {
	Client *asynq.Client
}

func NewQueueDispatcher(client *asynq.Client) *QueueDispatcher {
	return &QueueDispatcher{Client: client}
}

func (d *QueueDispatcher) enqueue(payload models.NotificationPayload) {
	task, opts, err := tasks.NewNotificationTask(payload)
	if err != nil {
		utils.GetLogger().Error("failed to build notification task",
			zap.String("kind", payload.Kind), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := d.Client.EnqueueContext(ctx, task, opts...); err != nil {
		utils.GetLogger().Error("failed to enqueue notification",
			zap.String("kind", payload.Kind), zap.Error(err))
	}
}

// providerEmail resolves the provider's email target: the dedicated
// email field, falling back to the contact field when it looks like an
// email address.
func providerEmail(service *models.Service) string {
	if service.Email != "" {
		return service.Email
	}
	if strings.Contains(service.Contact, "@") {
		return service.Contact
	}
	return ""
}

// providerPhone resolves the provider's SMS target from the contact
// field.
func providerPhone(service *models.Service) string {
	if phoneLike.MatchString(service.Contact) {
		return service.Contact
	}
	return ""
}

func bookingPayload(kind string, booking *models.Booking, service *models.Service) models.NotificationPayload {
	return models.NotificationPayload{
		Kind:          kind,
		BookingID:     booking.ID,
		ServiceType:   string(service.ServiceType),
		ProviderName:  service.ProviderName,
		Location:      service.Location,
		CustomerName:  booking.CustomerName,
		PreferredTime: booking.PreferredTime.Format(time.RFC3339),
		Price:         booking.Price,
		Notes:         booking.Notes,
	}
}

func (d *QueueDispatcher) NotifyProviderNewBooking(booking *models.Booking, service *models.Service, customerName string) {
	p := bookingPayload(models.NotifyKindProviderNewBooking, booking, service)
	p.CustomerName = customerName
	p.Email = providerEmail(service)
	p.Phone = providerPhone(service)
	d.enqueue(p)
}

func (d *QueueDispatcher) NotifyCustomerConfirmed(booking *models.Booking, service *models.Service, email, phone string) {
	p := bookingPayload(models.NotifyKindCustomerConfirmed, booking, service)
	p.Email = email
	p.Phone = phone
	d.enqueue(p)
}

func (d *QueueDispatcher) NotifyCustomerRejected(booking *models.Booking, service *models.Service, email, phone string) {
	p := bookingPayload(models.NotifyKindCustomerRejected, booking, service)
	p.Email = email
	p.Phone = phone
	d.enqueue(p)
}

func (d *QueueDispatcher) NotifyCustomerRescheduled(booking *models.Booking, service *models.Service, email, phone string) {
	p := bookingPayload(models.NotifyKindCustomerRescheduled, booking, service)
	p.Email = email
	p.Phone = phone
	d.enqueue(p)
}

func (d *QueueDispatcher) NotifyProviderCancelled(booking *models.Booking, service *models.Service, customerName string) {
	p := bookingPayload(models.NotifyKindProviderCancelled, booking, service)
	p.CustomerName = customerName
	p.Email = providerEmail(service)
	p.Phone = providerPhone(service)
	d.enqueue(p)
}

func (d *QueueDispatcher) NotifyProviderSetupLink(email, businessName, setupLink string) {
	d.enqueue(models.NotificationPayload{
		Kind:         models.NotifyKindProviderSetupLink,
		ProviderName: businessName,
		Email:        email,
		SetupLink:    setupLink,
	})
}

func (d *QueueDispatcher) NotifyProviderDigest(service *models.Service, pendingCount int) {
	d.enqueue(models.NotificationPayload{
		Kind:         models.NotifyKindProviderDigest,
		ServiceType:  string(service.ServiceType),
		ProviderName: service.ProviderName,
		PendingCount: pendingCount,
		Email:        providerEmail(service),
		Phone:        providerPhone(service),
	})
}
