package lead

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	leadRepo "slowday/database/repository/lead"
	"slowday/models"
)

// CreateLead records a new prospective provider in the funnel.
func (s *DefaultLeadService) CreateLead(lead *models.Lead) (*models.Lead, error) {
	if lead.BusinessName == "" {
		return nil, &ValidationError{Missing: []string{"Business name"}}
	}
	lead.ID = uuid.New().String()
	if lead.Status == "" {
		lead.Status = models.LeadNew
	}
	if !models.ValidLeadStatus(lead.Status) {
		return nil, ErrInvalidStatus
	}
	if err := s.Repo.Create(lead); err != nil {
		return nil, fmt.Errorf("creating lead: %w", err)
	}
	return lead, nil
}

// UpdateLead overwrites a lead's funnel record.
func (s *DefaultLeadService) UpdateLead(lead *models.Lead) (*models.Lead, error) {
	if lead.Status != "" && !models.ValidLeadStatus(lead.Status) {
		return nil, ErrInvalidStatus
	}
	if err := s.Repo.Update(lead); err != nil {
		if errors.Is(err, leadRepo.ErrNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("updating lead %s: %w", lead.ID, err)
	}
	return lead, nil
}

// DeleteLead removes a lead from the funnel.
func (s *DefaultLeadService) DeleteLead(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, leadRepo.ErrNotFound) {
			return ErrLeadNotFound
		}
		return fmt.Errorf("deleting lead %s: %w", id, err)
	}
	return nil
}

// GetLead fetches a single lead.
func (s *DefaultLeadService) GetLead(id string) (*models.Lead, error) {
	lead, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, leadRepo.ErrNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("fetching lead %s: %w", id, err)
	}
	return lead, nil
}

// ListLeads returns leads matching the staff filters.
func (s *DefaultLeadService) ListLeads(q leadRepo.ListQuery) ([]models.Lead, error) {
	leads, err := s.Repo.List(q)
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	return leads, nil
}

// UpdateLeadStatus moves a lead through the funnel. Onboarding happens
// through ConvertLead, which owns the transactional side.
func (s *DefaultLeadService) UpdateLeadStatus(id string, status models.LeadStatus) error {
	if !models.ValidLeadStatus(status) {
		return ErrInvalidStatus
	}
	if err := s.Repo.SetStatus(id, status); err != nil {
		if errors.Is(err, leadRepo.ErrNotFound) {
			return ErrLeadNotFound
		}
		return fmt.Errorf("updating lead %s status: %w", id, err)
	}
	return nil
}
