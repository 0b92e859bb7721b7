package lead

import (
	leadRepo "slowday/database/repository/lead"
	serviceRepo "slowday/database/repository/service"
	userRepo "slowday/database/repository/user"
	"slowday/models"
	"slowday/services/notification"
)

// ConversionResult is the live pair materialized from a lead.
type ConversionResult struct {
	User    *models.User    `json:"user"`
	Service *models.Service `json:"service"`
}

// LeadService manages the CRM funnel and the one-shot conversion of a
// lead into a provider account with a live listing.
type LeadService interface {
	CreateLead(lead *models.Lead) (*models.Lead, error)
	UpdateLead(lead *models.Lead) (*models.Lead, error)
	DeleteLead(id string) error
	GetLead(id string) (*models.Lead, error)
	ListLeads(q leadRepo.ListQuery) ([]models.Lead, error)
	UpdateLeadStatus(id string, status models.LeadStatus) error

	ConvertLead(id string) (*ConversionResult, error)
}

// DefaultLeadService is the production implementation.
type DefaultLeadService struct {
	Repo        leadRepo.LeadRepository
	UserRepo    userRepo.UserRepository
	ServiceRepo serviceRepo.ServiceRepository
	Notifier    notification.NotificationService

	// SetupLinkBase is the URL prefix for provider setup links.
	SetupLinkBase string
}
