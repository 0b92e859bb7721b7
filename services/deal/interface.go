package deal

import (
	"github.com/go-redis/redis/v8"

	serviceRepo "slowday/database/repository/service"
	"slowday/models"
)

// DealService manages provider deal listings and the public feed.
type DealService interface {
	CreateService(providerID string, service *models.Service) (*models.Service, error)
	UpdateService(providerID string, service *models.Service) (*models.Service, error)
	DeleteService(providerID, serviceID string) error
	SetDealActive(providerID, serviceID string, active bool) (*models.Service, error)

	GetService(id string) (*models.Service, error)
	ListActiveDeals(q serviceRepo.ListQuery) ([]models.Service, error)
	ListProviderServices(providerID string) ([]models.Service, error)
}

// DefaultDealService is the production implementation. The public feed
// is cached in Redis with a short TTL; writes drop the hot key.
type DefaultDealService struct {
	Repo  serviceRepo.ServiceRepository
	Cache *redis.Client
}
