package leadRepo

import (
	"errors"

	"slowday/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no lead matches the query.
var ErrNotFound = errors.New("lead not found")

// ListQuery filters the staff lead listing.
type ListQuery struct {
	Status     models.LeadStatus
	AssigneeID string
	City       string
}

// LeadRepository defines persistence operations for CRM leads.
type LeadRepository interface {
	Create(lead *models.Lead) error
	Update(lead *models.Lead) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	Delete(id string) error

	GetByID(id string) (*models.Lead, error)
	List(q ListQuery) ([]models.Lead, error)
	SetStatus(id string, status models.LeadStatus) error
}
