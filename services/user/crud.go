package user

import (
	"errors"
	"fmt"
	"strings"

	userRepo "slowday/database/repository/user"
	"slowday/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (s *DefaultUserService) getUser(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("fetching user %s: %w", id, err)
	}
	return u, nil
}

// GetUserByID fetches an account by ID.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	return s.getUser(id)
}

// GetUserByEmail fetches an account by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	u, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("fetching user by email: %w", err)
	}
	return u, nil
}

// UpdateProfile updates the mutable profile fields.
func (s *DefaultUserService) UpdateProfile(id, name, phone string) (*models.User, error) {
	update := bson.M{}
	if name = strings.TrimSpace(name); name != "" {
		update["name"] = name
	}
	if phone = strings.TrimSpace(phone); phone != "" {
		update["phone"] = phone
	}
	if len(update) > 0 {
		if err := s.Repo.UpdateSetDocument(id, update); err != nil {
			if errors.Is(err, userRepo.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, fmt.Errorf("updating user %s: %w", id, err)
		}
	}
	return s.getUser(id)
}

// DeleteUser removes an account.
func (s *DefaultUserService) DeleteUser(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("deleting user %s: %w", id, err)
	}
	return nil
}

// ToggleSavedService adds the service to the user's saved list, or
// removes it if already present.
func (s *DefaultUserService) ToggleSavedService(userID, serviceID string) (*models.User, error) {
	u, err := s.getUser(userID)
	if err != nil {
		return nil, err
	}

	saved := make([]string, 0, len(u.SavedServiceIDs)+1)
	found := false
	for _, id := range u.SavedServiceIDs {
		if id == serviceID {
			found = true
			continue
		}
		saved = append(saved, id)
	}
	if !found {
		saved = append(saved, serviceID)
	}

	if err := s.Repo.UpdateSetDocument(userID, bson.M{"saved_service_ids": saved}); err != nil {
		return nil, fmt.Errorf("updating saved services: %w", err)
	}
	u.SavedServiceIDs = saved
	return u, nil
}
