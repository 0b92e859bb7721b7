package booking

import (
	"time"

	bookingRepo "slowday/database/repository/booking"
	serviceRepo "slowday/database/repository/service"
	userRepo "slowday/database/repository/user"
	"slowday/models"
	"slowday/services/notification"
)

// CreateBookingRequest carries a customer's appointment request.
type CreateBookingRequest struct {
	CustomerID      string
	CustomerName    string
	ServiceID       string
	CustomerContact string
	PreferredTime   time.Time
	Notes           string
}

// PeriodStats summarizes booking volume and earnings for one window.
type PeriodStats struct {
	Count    int     `json:"count"`
	Earnings float64 `json:"earnings"`
}

// DayStats is one row of the trailing seven-day series.
type DayStats struct {
	Date     string  `json:"date"`
	Bookings int     `json:"bookings"`
	Earnings float64 `json:"earnings"`
}

// ProviderAnalytics is the provider-facing dashboard report.
type ProviderAnalytics struct {
	Daily     PeriodStats    `json:"daily"`
	Weekly    PeriodStats    `json:"weekly"`
	Monthly   PeriodStats    `json:"monthly"`
	AllTime   PeriodStats    `json:"allTime"`
	ByStatus  map[string]int `json:"byStatus"`
	Last7Days []DayStats     `json:"last7Days"`
	Pending   int            `json:"pending"`
}

// BookingService governs booking creation, the status lifecycle, and
// booking queries.
type BookingService interface {
	CreateBooking(req CreateBookingRequest) (*models.Booking, error)
	UpdateBookingStatus(actorID, bookingID string, status models.BookingStatus, newTime *time.Time) (*models.Booking, error)
	GetCustomerBookings(customerID string) ([]models.Booking, error)
	GetProviderBookings(providerID string, status models.BookingStatus) ([]models.Booking, error)
	GetProviderAnalytics(providerID string) (*ProviderAnalytics, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	ServiceRepo serviceRepo.ServiceRepository
	UserRepo    userRepo.UserRepository
	Notifier    notification.NotificationService

	// ReleaseSlotOnCancel returns a slot to the pool when a booking is
	// cancelled or rejected. Disabled by default: the original ledger
	// never refunded slots, and the flag exists to make that policy
	// explicit rather than accidental.
	ReleaseSlotOnCancel bool
}
