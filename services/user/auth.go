package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	userRepo "slowday/database/repository/user"
	"slowday/models"
	"slowday/utils"
)

// authTokenTTL is the lifetime of issued session tokens.
const authTokenTTL = 7 * 24 * time.Hour

func buildAuthResponse(u *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, string(u.AccountType), authTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("signing auth token: %w", err)
	}
	return &AuthResponse{
		ID:          u.ID,
		Token:       token,
		Name:        u.Name,
		Email:       u.Email,
		AccountType: u.AccountType,
	}, nil
}

// Register creates a customer or provider account with a hashed
// password and returns a signed session token.
func (s *DefaultUserService) Register(req RegisterRequest) (*AuthResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Name == "" || req.Email == "" {
		return nil, ErrInvalidInput
	}
	if req.AccountType != models.AccountCustomer && req.AccountType != models.AccountProvider {
		return nil, ErrInvalidInput
	}
	if len(req.Password) < 6 {
		return nil, ErrWeakPassword
	}

	if _, err := s.Repo.GetByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, userRepo.ErrNotFound) {
		return nil, fmt.Errorf("checking email uniqueness: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		AccountType:  req.AccountType,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return buildAuthResponse(u)
}

// Authenticate verifies credentials and returns a signed session token.
// Accounts still pending provider setup have no password and cannot
// sign in this way.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("fetching user by email: %w", err)
	}
	if u.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return buildAuthResponse(u)
}
