package models

import "time"

// AccountType distinguishes the two marketplace roles.
type AccountType string

const (
	AccountCustomer AccountType = "customer"
	AccountProvider AccountType = "provider"
)

// User is a marketplace account. Provider accounts created by lead
// conversion start with an empty password hash and a time-limited setup
// token; the owner sets a password through the setup link.
type User struct {
	ID           string      `bson:"id" json:"id"`
	Name         string      `bson:"name" json:"name"`
	Email        string      `bson:"email,omitempty" json:"email,omitempty"`
	PasswordHash string      `bson:"password_hash,omitempty" json:"-"`
	Phone        string      `bson:"phone,omitempty" json:"phone,omitempty"`
	AccountType  AccountType `bson:"account_type" json:"accountType"`
	IsVerified   bool        `bson:"is_verified" json:"isVerified"`

	SavedServiceIDs []string `bson:"saved_service_ids,omitempty" json:"savedServiceIds,omitempty"`

	ProviderSetupToken   string     `bson:"provider_setup_token,omitempty" json:"-"`
	ProviderSetupExpires *time.Time `bson:"provider_setup_expires,omitempty" json:"-"`

	ResetPasswordToken   string     `bson:"reset_password_token,omitempty" json:"-"`
	ResetPasswordExpires *time.Time `bson:"reset_password_expires,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
