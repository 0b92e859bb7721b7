package userRepo

import (
	"errors"
	"time"

	"slowday/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no user matches the query.
var ErrNotFound = errors.New("user not found")

// UserRepository defines persistence operations for marketplace accounts.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	Delete(id string) error

	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetBySetupToken(tokenHash string) (*models.User, error)

	CountAll() (int64, error)
	CountByAccountType(accountType models.AccountType) (int64, error)
	CountCreatedSince(t time.Time) (int64, error)
	CountActiveSince(t time.Time) (int64, error)
}
