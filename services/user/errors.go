package user

import "errors"

var (
	// ErrUserNotFound indicates the referenced account does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken indicates an account already holds the email.
	ErrEmailTaken = errors.New("an account with this email already exists")
	// ErrInvalidCredentials indicates a failed sign-in attempt.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidInput indicates a malformed registration request.
	ErrInvalidInput = errors.New("invalid registration details")
	// ErrWeakPassword indicates a password below the minimum length.
	ErrWeakPassword = errors.New("password must be at least 6 characters")
	// ErrSetupTokenInvalid indicates an unknown or already-used setup token.
	ErrSetupTokenInvalid = errors.New("setup link is invalid")
	// ErrSetupTokenExpired indicates the 30-day setup window has passed.
	ErrSetupTokenExpired = errors.New("setup link has expired")
)
