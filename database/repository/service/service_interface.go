package serviceRepo

import (
	"errors"

	"slowday/models"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	// ErrNotFound is returned when no service matches the query.
	ErrNotFound = errors.New("service not found")
	// ErrCapacityExceeded is returned by ReserveSlot when the requested
	// pool has no remaining slots.
	ErrCapacityExceeded = errors.New("slot capacity exceeded")
)

// ListQuery filters the public deal listing.
type ListQuery struct {
	ServiceType string
	Location    string
}

// ServiceRepository defines persistence operations for service deals,
// including the atomic slot-ledger primitives.
type ServiceRepository interface {
	Create(service *models.Service) error
	Update(service *models.Service) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	SoftDelete(id string) error
	Delete(id string) error

	GetByID(id string) (*models.Service, error)
	ListActive(q ListQuery) ([]models.Service, error)
	ListByProvider(providerID string) ([]models.Service, error)
	ProviderServiceIDs(providerID string) ([]string, error)

	// ReserveSlot atomically claims one slot in the weekday or weekend
	// pool. Pools with a nil ceiling are unlimited and their used counter
	// is left untouched. Returns ErrCapacityExceeded when the pool is
	// saturated.
	ReserveSlot(id string, weekend bool) error

	// ReleaseSlot returns one slot to the pool. Only invoked when the
	// release-on-cancel policy is enabled; never drives a counter below
	// zero.
	ReleaseSlot(id string, weekend bool) error
}
