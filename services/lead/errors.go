package lead

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLeadNotFound indicates the referenced lead does not exist.
	ErrLeadNotFound = errors.New("lead not found")
	// ErrDuplicateEmail indicates an existing account already holds the
	// lead's email.
	ErrDuplicateEmail = errors.New("an account with this email already exists")
	// ErrAlreadyOnboarded indicates the lead was already converted.
	ErrAlreadyOnboarded = errors.New("lead has already been onboarded")
	// ErrInvalidStatus indicates a funnel status outside the enumerated set.
	ErrInvalidStatus = errors.New("invalid lead status")
)

// ValidationError reports every missing conversion precondition at once.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("lead is missing required fields: %s", strings.Join(e.Missing, ", "))
}
