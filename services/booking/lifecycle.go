package booking

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	bookingRepo "slowday/database/repository/booking"
	serviceRepo "slowday/database/repository/service"
	"slowday/models"
	"slowday/utils"
)

// UpdateBookingStatus applies one lifecycle transition on behalf of
// actorID. Provider authority is the stored provider reference OR the
// current owner of the referenced service; the two can diverge when a
// service changes hands after booking creation, and either match grants
// authority. A customer without provider authority may only cancel.
func (s *DefaultBookingService) UpdateBookingStatus(actorID, bookingID string, status models.BookingStatus, newTime *time.Time) (*models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return nil, ErrInvalidStatus
	}

	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("fetching booking %s: %w", bookingID, err)
	}
	if booking.Status.Terminal() {
		return nil, ErrTerminalStatus
	}

	// The service may have been hard-deleted; authority then rests on the
	// stored provider reference alone.
	service, err := s.ServiceRepo.GetByID(booking.ServiceID)
	if err != nil && !errors.Is(err, serviceRepo.ErrNotFound) {
		return nil, fmt.Errorf("fetching service %s: %w", booking.ServiceID, err)
	}

	isProvider := booking.ProviderID != "" && booking.ProviderID == actorID
	isCustomer := booking.CustomerID == actorID
	isServiceOwner := service != nil && service.ProviderID != "" && service.ProviderID == actorID
	canActAsProvider := isProvider || isServiceOwner

	if !canActAsProvider && !isCustomer {
		return nil, ErrNotAuthorized
	}
	if isCustomer && !canActAsProvider && status != models.BookingCancelled {
		return nil, ErrCustomerCancelOnly
	}

	booking.Status = status
	if status == models.BookingRescheduled {
		if newTime == nil || newTime.IsZero() {
			return nil, ErrRescheduleTimeRequired
		}
		// Only the time moves: price and day classification stay as
		// quoted at creation.
		booking.PreferredTime = *newTime
	}

	if err := s.Repo.Update(booking); err != nil {
		return nil, fmt.Errorf("updating booking %s: %w", bookingID, err)
	}

	if s.ReleaseSlotOnCancel && (status == models.BookingCancelled || status == models.BookingRejected) {
		if err := s.ServiceRepo.ReleaseSlot(booking.ServiceID, booking.IsWeekend); err != nil {
			utils.GetLogger().Error("failed to release slot on cancellation",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	s.notifyTransition(booking, service, status, isCustomer && !canActAsProvider)

	return booking, nil
}

// notifyTransition dispatches the side effects of a transition. All
// notification calls are fire-and-forget; a dead email or SMS provider
// must never fail the status update itself.
func (s *DefaultBookingService) notifyTransition(booking *models.Booking, service *models.Service, status models.BookingStatus, byCustomer bool) {
	if service == nil {
		return
	}

	customer, err := s.UserRepo.GetByID(booking.CustomerID)
	if err != nil {
		utils.GetLogger().Warn("skipping transition notification, customer lookup failed",
			zap.String("bookingID", booking.ID), zap.Error(err))
		return
	}

	switch status {
	case models.BookingConfirmed:
		s.Notifier.NotifyCustomerConfirmed(booking, service, customer.Email, customer.Phone)
	case models.BookingRescheduled:
		s.Notifier.NotifyCustomerRescheduled(booking, service, customer.Email, customer.Phone)
	case models.BookingRejected:
		s.Notifier.NotifyCustomerRejected(booking, service, customer.Email, customer.Phone)
	case models.BookingCancelled:
		if byCustomer {
			s.Notifier.NotifyProviderCancelled(booking, service, customer.Name)
		} else {
			s.Notifier.NotifyCustomerRejected(booking, service, customer.Email, customer.Phone)
		}
	}
}
