package booking

import (
	"fmt"
	"time"

	"slowday/models"
)

// GetCustomerBookings returns the customer's own bookings, newest first.
func (s *DefaultBookingService) GetCustomerBookings(customerID string) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByCustomer(customerID)
	if err != nil {
		return nil, fmt.Errorf("listing customer bookings: %w", err)
	}
	return bookings, nil
}

// GetProviderBookings returns bookings the provider has authority over,
// optionally filtered by status.
func (s *DefaultBookingService) GetProviderBookings(providerID string, status models.BookingStatus) ([]models.Booking, error) {
	if status != "" && !models.ValidBookingStatus(status) {
		return nil, ErrInvalidStatus
	}
	serviceIDs, err := s.ServiceRepo.ProviderServiceIDs(providerID)
	if err != nil {
		return nil, fmt.Errorf("resolving provider services: %w", err)
	}
	bookings, err := s.Repo.ListForProvider(providerID, serviceIDs, status)
	if err != nil {
		return nil, fmt.Errorf("listing provider bookings: %w", err)
	}
	return bookings, nil
}

func earnings(bookings []models.Booking) float64 {
	var total float64
	for _, b := range bookings {
		if b.Status == models.BookingConfirmed || b.Status == models.BookingCompleted {
			total += b.Price
		}
	}
	return total
}

func createdSince(bookings []models.Booking, t time.Time) []models.Booking {
	var out []models.Booking
	for _, b := range bookings {
		if !b.CreatedAt.Before(t) {
			out = append(out, b)
		}
	}
	return out
}

// GetProviderAnalytics builds the provider dashboard report: volume and
// earnings per window, a trailing seven-day series, and a status
// histogram. Earnings count confirmed and completed bookings only.
func (s *DefaultBookingService) GetProviderAnalytics(providerID string) (*ProviderAnalytics, error) {
	serviceIDs, err := s.ServiceRepo.ProviderServiceIDs(providerID)
	if err != nil {
		return nil, fmt.Errorf("resolving provider services: %w", err)
	}
	allTime, err := s.Repo.ListForProvider(providerID, serviceIDs, "")
	if err != nil {
		return nil, fmt.Errorf("listing provider bookings: %w", err)
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := startOfDay.AddDate(0, 0, -int(startOfDay.Weekday()))
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	daily := createdSince(allTime, startOfDay)
	weekly := createdSince(allTime, startOfWeek)
	monthly := createdSince(allTime, startOfMonth)

	report := &ProviderAnalytics{
		Daily:    PeriodStats{Count: len(daily), Earnings: earnings(daily)},
		Weekly:   PeriodStats{Count: len(weekly), Earnings: earnings(weekly)},
		Monthly:  PeriodStats{Count: len(monthly), Earnings: earnings(monthly)},
		AllTime:  PeriodStats{Count: len(allTime), Earnings: earnings(allTime)},
		ByStatus: make(map[string]int),
	}

	for i := 6; i >= 0; i-- {
		day := startOfDay.AddDate(0, 0, -i)
		next := day.AddDate(0, 0, 1)
		var dayBookings []models.Booking
		for _, b := range allTime {
			if !b.CreatedAt.Before(day) && b.CreatedAt.Before(next) {
				dayBookings = append(dayBookings, b)
			}
		}
		report.Last7Days = append(report.Last7Days, DayStats{
			Date:     day.Format("Mon Jan 2"),
			Bookings: len(dayBookings),
			Earnings: earnings(dayBookings),
		})
	}

	for _, b := range allTime {
		report.ByStatus[string(b.Status)]++
		if b.Status == models.BookingPending {
			report.Pending++
		}
	}

	return report, nil
}
