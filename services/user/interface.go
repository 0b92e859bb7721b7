package user

import (
	userRepo "slowday/database/repository/user"
	"slowday/models"
)

// RegisterRequest carries a self-service signup.
type RegisterRequest struct {
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Password    string             `json:"password"`
	Phone       string             `json:"phone"`
	AccountType models.AccountType `json:"accountType"`
}

// AuthResponse is returned on successful registration, sign-in, or
// provider setup completion.
type AuthResponse struct {
	ID          string             `json:"id"`
	Token       string             `json:"token"`
	Name        string             `json:"name"`
	Email       string             `json:"email,omitempty"`
	AccountType models.AccountType `json:"accountType"`
}

// UserService manages marketplace accounts.
type UserService interface {
	Register(req RegisterRequest) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	CompleteProviderSetup(token, password string) (*AuthResponse, error)

	GetUserByID(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateProfile(id, name, phone string) (*models.User, error)
	DeleteUser(id string) error
	ToggleSavedService(userID, serviceID string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
