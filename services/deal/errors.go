package deal

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrServiceNotFound indicates the referenced listing does not exist.
	ErrServiceNotFound = errors.New("service not found")
	// ErrNotOwner indicates the actor does not own the listing.
	ErrNotOwner = errors.New("not the owner of this service")
)

// ValidationError reports every invalid listing field at once.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("service listing is missing required fields: %s", strings.Join(e.Missing, ", "))
}
