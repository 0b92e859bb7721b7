package user

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	userRepo "slowday/database/repository/user"
	"slowday/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// CompleteProviderSetup claims a provider account created by lead
// conversion: the opaque token from the setup link is validated against
// its stored hash and 30-day expiry, the password is set, and the token
// is cleared so the link is single-use.
func (s *DefaultUserService) CompleteProviderSetup(token, password string) (*AuthResponse, error) {
	if token == "" {
		return nil, ErrSetupTokenInvalid
	}
	if len(password) < 6 {
		return nil, ErrWeakPassword
	}

	u, err := s.Repo.GetBySetupToken(utils.HashToken(token))
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrSetupTokenInvalid
		}
		return nil, fmt.Errorf("fetching user by setup token: %w", err)
	}
	if u.ProviderSetupExpires == nil || time.Now().After(*u.ProviderSetupExpires) {
		return nil, ErrSetupTokenExpired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	if err := s.Repo.UpdateSetDocument(u.ID, bson.M{
		"password_hash":          string(hash),
		"provider_setup_token":   "",
		"provider_setup_expires": nil,
		"is_verified":            true,
	}); err != nil {
		return nil, fmt.Errorf("finalizing provider setup: %w", err)
	}

	u.PasswordHash = string(hash)
	u.IsVerified = true
	return buildAuthResponse(u)
}
