package bookingRepo

import (
	"errors"
	"time"

	"slowday/models"
)

// ErrNotFound is returned when no booking matches the query.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(booking *models.Booking) error
	Update(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)

	ListByCustomer(customerID string) ([]models.Booking, error)

	// ListForProvider returns bookings where the stored provider
	// reference matches, or the booking's service is one of serviceIDs.
	// An empty status means no status filter.
	ListForProvider(providerID string, serviceIDs []string, status models.BookingStatus) ([]models.Booking, error)

	ListByStatus(status models.BookingStatus) ([]models.Booking, error)

	CountAll() (int64, error)
	CountByStatus(status models.BookingStatus) (int64, error)
	CountCreatedSince(t time.Time) (int64, error)

	// RevenueTotal sums booking prices over confirmed and completed
	// bookings.
	RevenueTotal() (float64, error)
}
