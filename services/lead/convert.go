package lead

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	leadRepo "slowday/database/repository/lead"
	userRepo "slowday/database/repository/user"
	"slowday/models"
	"slowday/utils"
)

// setupTokenTTL is how long a converted provider has to claim their
// account.
const setupTokenTTL = 30 * 24 * time.Hour

// validateForConversion collects every missing precondition instead of
// failing on the first, so staff see the full fix list at once.
func validateForConversion(lead *models.Lead) *ValidationError {
	var missing []string
	if strings.TrimSpace(lead.BusinessName) == "" {
		missing = append(missing, "Business name")
	}
	if strings.TrimSpace(lead.ServiceType) == "" {
		missing = append(missing, "Service type")
	}
	if len(strings.TrimSpace(lead.Description)) < 10 {
		missing = append(missing, "Description (min 10 chars)")
	}
	if strings.TrimSpace(lead.City) == "" {
		missing = append(missing, "City")
	}
	if strings.TrimSpace(lead.Phone) == "" && strings.TrimSpace(lead.Email) == "" {
		missing = append(missing, "Phone or email")
	}
	if lead.DiscountPrice == nil {
		missing = append(missing, "Discount price")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// MapServiceType maps a lead's free-text service label onto the closed
// category set; anything unrecognized lands in Other.
func MapServiceType(raw string) models.ServiceType {
	label := strings.TrimSpace(raw)
	for _, t := range models.ServiceTypes {
		if strings.EqualFold(label, string(t)) {
			return t
		}
	}
	return models.ServiceTypeOther
}

// ConvertLead materializes a lead into a provider account plus a live
// (but not yet activated) deal listing. The pipeline has exactly one
// compensating action: if the service insert fails, the user created
// just before it is deleted. Failures after the service exists are not
// rolled back.
func (s *DefaultLeadService) ConvertLead(id string) (*ConversionResult, error) {
	lead, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, leadRepo.ErrNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, fmt.Errorf("fetching lead %s: %w", id, err)
	}
	if lead.Status == models.LeadOnboarded {
		return nil, ErrAlreadyOnboarded
	}

	if vErr := validateForConversion(lead); vErr != nil {
		return nil, vErr
	}

	email := strings.ToLower(strings.TrimSpace(lead.Email))
	if email != "" {
		if _, err := s.UserRepo.GetByEmail(email); err == nil {
			return nil, ErrDuplicateEmail
		} else if !errors.Is(err, userRepo.ErrNotFound) {
			return nil, fmt.Errorf("checking email uniqueness: %w", err)
		}
	}

	setupToken, err := utils.GenerateOpaqueToken()
	if err != nil {
		return nil, fmt.Errorf("generating setup token: %w", err)
	}
	expires := time.Now().Add(setupTokenTTL)

	name := lead.ContactName
	if name == "" {
		name = lead.BusinessName
	}
	user := &models.User{
		ID:                   uuid.New().String(),
		Name:                 name,
		Email:                email,
		Phone:                lead.Phone,
		AccountType:          models.AccountProvider,
		ProviderSetupToken:   utils.HashToken(setupToken),
		ProviderSetupExpires: &expires,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, fmt.Errorf("creating provider account: %w", err)
	}

	contact := lead.Phone
	if contact == "" {
		contact = email
	}
	// Both pools get the single negotiated discount price. The lead's
	// day list records intent only; it does not split the pricing.
	service := &models.Service{
		ID:           uuid.New().String(),
		ProviderID:   user.ID,
		ProviderName: lead.BusinessName,
		ServiceType:  MapServiceType(lead.ServiceType),
		Description:  lead.Description,
		Location:     lead.City,
		Contact:      contact,
		Email:        email,
		NormalPrice:  lead.Price,
		WeekdayPrice: *lead.DiscountPrice,
		WeekendPrice: *lead.DiscountPrice,
		DealActive:   false,
		IsActive:     true,
	}
	if err := s.ServiceRepo.Create(service); err != nil {
		if delErr := s.UserRepo.Delete(user.ID); delErr != nil {
			utils.GetLogger().Error("conversion rollback failed, orphaned provider account",
				zap.String("userID", user.ID), zap.Error(delErr))
		}
		return nil, fmt.Errorf("creating service listing: %w", err)
	}

	if err := s.Repo.SetStatus(lead.ID, models.LeadOnboarded); err != nil {
		// Past the rollback point: the account and listing stand.
		return nil, fmt.Errorf("marking lead %s onboarded: %w", lead.ID, err)
	}

	if email != "" {
		link := fmt.Sprintf("%s?token=%s", s.SetupLinkBase, setupToken)
		s.Notifier.NotifyProviderSetupLink(email, lead.BusinessName, link)
	}

	return &ConversionResult{User: user, Service: service}, nil
}
