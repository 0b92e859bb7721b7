package booking

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	serviceRepo "slowday/database/repository/service"
	"slowday/models"
	"slowday/utils"
)

// CreateBooking books one slot of a deal. The price and day
// classification are computed here and frozen into the booking; the slot
// is claimed through the ledger's conditional update before the booking
// document is inserted, so a pool with one remaining slot admits exactly
// one of two concurrent requests.
func (s *DefaultBookingService) CreateBooking(req CreateBookingRequest) (*models.Booking, error) {
	if req.ServiceID == "" || req.CustomerID == "" || req.CustomerContact == "" || req.PreferredTime.IsZero() {
		return nil, ErrMissingFields
	}

	service, err := s.ServiceRepo.GetByID(req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("fetching service %s: %w", req.ServiceID, err)
	}
	if !service.IsActive || !service.DealActive {
		return nil, ErrDealInactive
	}

	price, weekend := Quote(service, req.PreferredTime)

	if err := s.ServiceRepo.ReserveSlot(service.ID, weekend); err != nil {
		if errors.Is(err, serviceRepo.ErrCapacityExceeded) {
			return nil, ErrCapacityExceeded
		}
		return nil, fmt.Errorf("reserving slot for service %s: %w", service.ID, err)
	}

	booking := &models.Booking{
		ID:              uuid.New().String(),
		CustomerID:      req.CustomerID,
		ServiceID:       service.ID,
		ProviderID:      service.ProviderID,
		CustomerName:    req.CustomerName,
		CustomerContact: req.CustomerContact,
		PreferredTime:   req.PreferredTime,
		Notes:           req.Notes,
		Status:          models.BookingPending,
		Price:           price,
		IsWeekend:       weekend,
	}

	if err := s.Repo.Create(booking); err != nil {
		// The slot was already claimed; hand it back so a failed insert
		// does not shrink the pool.
		if relErr := s.ServiceRepo.ReleaseSlot(service.ID, weekend); relErr != nil {
			utils.GetLogger().Error("failed to release slot after booking insert failure",
				zap.String("serviceID", service.ID), zap.Error(relErr))
		}
		return nil, fmt.Errorf("creating booking: %w", err)
	}

	s.Notifier.NotifyProviderNewBooking(booking, service, req.CustomerName)

	return booking, nil
}
