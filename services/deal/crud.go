package deal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	serviceRepo "slowday/database/repository/service"
	"slowday/models"
	"slowday/utils"
)

const (
	feedCacheKey = "deals:active"
	feedCacheTTL = 60 * time.Second
)

func validateListing(service *models.Service) *ValidationError {
	var missing []string
	if strings.TrimSpace(service.ProviderName) == "" {
		missing = append(missing, "Provider name")
	}
	if !models.ValidServiceType(service.ServiceType) {
		missing = append(missing, "Service type")
	}
	if len(strings.TrimSpace(service.Description)) < 10 {
		missing = append(missing, "Description (min 10 chars)")
	}
	if strings.TrimSpace(service.Location) == "" {
		missing = append(missing, "Location")
	}
	if strings.TrimSpace(service.Contact) == "" {
		missing = append(missing, "Contact")
	}
	if service.WeekdayPrice < 0 {
		missing = append(missing, "Weekday price")
	}
	if service.WeekendPrice < 0 {
		missing = append(missing, "Weekend price")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// CreateService publishes a new deal listing owned by providerID.
func (s *DefaultDealService) CreateService(providerID string, service *models.Service) (*models.Service, error) {
	if vErr := validateListing(service); vErr != nil {
		return nil, vErr
	}

	service.ID = uuid.New().String()
	service.ProviderID = providerID
	service.IsActive = true
	service.WeekdaySlotsUsed = 0
	service.WeekendSlotsUsed = 0

	if err := s.Repo.Create(service); err != nil {
		return nil, fmt.Errorf("creating service: %w", err)
	}
	s.invalidateFeed()
	return service, nil
}

// loadOwned fetches a service and checks the actor owns it.
func (s *DefaultDealService) loadOwned(providerID, serviceID string) (*models.Service, error) {
	existing, err := s.Repo.GetByID(serviceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("fetching service %s: %w", serviceID, err)
	}
	if existing.ProviderID != providerID {
		return nil, ErrNotOwner
	}
	return existing, nil
}

// UpdateService edits an owned listing. Slot usage counters are owned
// by the ledger and never overwritten by edits; price edits never touch
// existing bookings, which keep their creation-time quote.
func (s *DefaultDealService) UpdateService(providerID string, service *models.Service) (*models.Service, error) {
	existing, err := s.loadOwned(providerID, service.ID)
	if err != nil {
		return nil, err
	}
	if vErr := validateListing(service); vErr != nil {
		return nil, vErr
	}

	service.ProviderID = existing.ProviderID
	service.WeekdaySlotsUsed = existing.WeekdaySlotsUsed
	service.WeekendSlotsUsed = existing.WeekendSlotsUsed
	service.CreatedAt = existing.CreatedAt

	if err := s.Repo.Update(service); err != nil {
		return nil, fmt.Errorf("updating service %s: %w", service.ID, err)
	}
	s.invalidateFeed()
	return service, nil
}

// DeleteService soft-deletes an owned listing so existing bookings keep
// a resolvable reference.
func (s *DefaultDealService) DeleteService(providerID, serviceID string) error {
	if _, err := s.loadOwned(providerID, serviceID); err != nil {
		return err
	}
	if err := s.Repo.SoftDelete(serviceID); err != nil {
		return fmt.Errorf("deleting service %s: %w", serviceID, err)
	}
	s.invalidateFeed()
	return nil
}

// SetDealActive toggles the booking gate on an owned listing.
func (s *DefaultDealService) SetDealActive(providerID, serviceID string, active bool) (*models.Service, error) {
	existing, err := s.loadOwned(providerID, serviceID)
	if err != nil {
		return nil, err
	}
	existing.DealActive = active
	if err := s.Repo.Update(existing); err != nil {
		return nil, fmt.Errorf("toggling deal on service %s: %w", serviceID, err)
	}
	s.invalidateFeed()
	return existing, nil
}

// GetService fetches a single listing.
func (s *DefaultDealService) GetService(id string) (*models.Service, error) {
	service, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("fetching service %s: %w", id, err)
	}
	return service, nil
}

// ListActiveDeals returns the public feed. The unfiltered listing is the
// hot path and is served from cache when possible.
func (s *DefaultDealService) ListActiveDeals(q serviceRepo.ListQuery) ([]models.Service, error) {
	cacheable := s.Cache != nil && q.ServiceType == "" && q.Location == ""

	if cacheable {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if data, err := s.Cache.Get(ctx, feedCacheKey).Result(); err == nil {
			var services []models.Service
			if err := json.Unmarshal([]byte(data), &services); err == nil {
				return services, nil
			}
		}
	}

	services, err := s.Repo.ListActive(q)
	if err != nil {
		return nil, fmt.Errorf("listing active deals: %w", err)
	}

	if cacheable {
		if data, err := json.Marshal(services); err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := s.Cache.Set(ctx, feedCacheKey, data, feedCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache deal feed", zap.Error(err))
			}
		}
	}

	return services, nil
}

// ListProviderServices returns every listing owned by the provider.
func (s *DefaultDealService) ListProviderServices(providerID string) ([]models.Service, error) {
	services, err := s.Repo.ListByProvider(providerID)
	if err != nil {
		return nil, fmt.Errorf("listing provider services: %w", err)
	}
	return services, nil
}

func (s *DefaultDealService) invalidateFeed() {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Del(ctx, feedCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate deal feed cache", zap.Error(err))
	}
}
