package admin

import (
	"fmt"
	"time"

	bookingRepo "slowday/database/repository/booking"
	serviceRepo "slowday/database/repository/service"
	userRepo "slowday/database/repository/user"
	"slowday/models"
	"slowday/services/booking"
)

// SlotRow is one availability row in the back-office deal table. A nil
// TotalSlots means the pool is unlimited.
type SlotRow struct {
	Day            string  `json:"day"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	Duration       int     `json:"duration,omitempty"`
	TotalSlots     *int    `json:"totalSlots"`
	BookedSlots    int     `json:"bookedSlots"`
	RemainingSlots *int    `json:"remainingSlots"`
	Price          float64 `json:"price"`
}

// DealSummary is one listing in the per-category breakdown.
type DealSummary struct {
	ID           string    `json:"id"`
	ProviderName string    `json:"providerName"`
	Location     string    `json:"location"`
	DealActive   bool      `json:"dealActive"`
	Slots        []SlotRow `json:"slots"`
}

// UserStats is the account section of the report.
type UserStats struct {
	TotalUsers     int64 `json:"totalUsers"`
	TotalCustomers int64 `json:"totalCustomers"`
	TotalProviders int64 `json:"totalProviders"`
	DAU            int64 `json:"dau"`
	WAU            int64 `json:"wau"`
	MAU            int64 `json:"mau"`
	NewUsersToday  int64 `json:"newUsersToday"`
	NewUsersWeek   int64 `json:"newUsersWeek"`
	NewUsersMonth  int64 `json:"newUsersMonth"`
}

// BookingStats is the booking section of the report.
type BookingStats struct {
	Total        int64   `json:"totalBookings"`
	Pending      int64   `json:"pendingBookings"`
	Confirmed    int64   `json:"confirmedBookings"`
	Completed    int64   `json:"completedBookings"`
	Cancelled    int64   `json:"cancelledBookings"`
	Today        int64   `json:"bookingsToday"`
	Week         int64   `json:"bookingsWeek"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// PlatformAnalytics is the full back-office report.
type PlatformAnalytics struct {
	GeneratedAt time.Time                `json:"generatedAt"`
	Users       UserStats                `json:"users"`
	Services    int                      `json:"totalServices"`
	ByCategory  map[string][]DealSummary `json:"byCategory"`
	Bookings    BookingStats             `json:"bookings"`
}

// AdminService assembles staff-facing platform analytics.
type AdminService interface {
	GetPlatformAnalytics() (*PlatformAnalytics, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	UserRepo    userRepo.UserRepository
	ServiceRepo serviceRepo.ServiceRepository
	BookingRepo bookingRepo.BookingRepository
}

func slotRowForPool(svc *models.Service, weekend bool, day, start, end string, duration int) SlotRow {
	capacity, used := svc.SlotCapacity(weekend)
	price := svc.WeekdayPrice
	if weekend {
		price = svc.WeekendPrice
	}
	row := SlotRow{
		Day:         day,
		StartTime:   start,
		EndTime:     end,
		Duration:    duration,
		TotalSlots:  capacity,
		BookedSlots: used,
		Price:       price,
	}
	if capacity != nil {
		remaining := *capacity - used
		if remaining < 0 {
			remaining = 0
		}
		row.RemainingSlots = &remaining
	}
	return row
}

// GetPlatformAnalytics builds the full back-office report: account
// counts and activity, per-category slot tables, and booking volume
// with revenue.
func (s *DefaultAdminService) GetPlatformAnalytics() (*PlatformAnalytics, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := now.AddDate(0, 0, -7)
	startOfMonth := now.AddDate(0, 0, -30)

	report := &PlatformAnalytics{
		GeneratedAt: now,
		ByCategory:  make(map[string][]DealSummary),
	}

	var err error
	if report.Users.TotalUsers, err = s.UserRepo.CountAll(); err != nil {
		return nil, fmt.Errorf("counting users: %w", err)
	}
	if report.Users.TotalCustomers, err = s.UserRepo.CountByAccountType(models.AccountCustomer); err != nil {
		return nil, fmt.Errorf("counting customers: %w", err)
	}
	if report.Users.TotalProviders, err = s.UserRepo.CountByAccountType(models.AccountProvider); err != nil {
		return nil, fmt.Errorf("counting providers: %w", err)
	}
	if report.Users.DAU, err = s.UserRepo.CountActiveSince(startOfDay); err != nil {
		return nil, fmt.Errorf("counting daily actives: %w", err)
	}
	if report.Users.WAU, err = s.UserRepo.CountActiveSince(startOfWeek); err != nil {
		return nil, fmt.Errorf("counting weekly actives: %w", err)
	}
	if report.Users.MAU, err = s.UserRepo.CountActiveSince(startOfMonth); err != nil {
		return nil, fmt.Errorf("counting monthly actives: %w", err)
	}
	if report.Users.NewUsersToday, err = s.UserRepo.CountCreatedSince(startOfDay); err != nil {
		return nil, fmt.Errorf("counting new users: %w", err)
	}
	if report.Users.NewUsersWeek, err = s.UserRepo.CountCreatedSince(startOfWeek); err != nil {
		return nil, fmt.Errorf("counting new users: %w", err)
	}
	if report.Users.NewUsersMonth, err = s.UserRepo.CountCreatedSince(startOfMonth); err != nil {
		return nil, fmt.Errorf("counting new users: %w", err)
	}

	services, err := s.ServiceRepo.ListActive(serviceRepo.ListQuery{})
	if err != nil {
		return nil, fmt.Errorf("listing active services: %w", err)
	}
	report.Services = len(services)

	for i := range services {
		svc := &services[i]
		category := string(svc.ServiceType)
		if category == "" {
			category = string(models.ServiceTypeOther)
		}

		var rows []SlotRow
		if len(svc.AvailabilityWindows) > 0 {
			for _, w := range svc.AvailabilityWindows {
				weekend := booking.IsWeekendDayName(w.Day)
				rows = append(rows, slotRowForPool(svc, weekend, w.Day, w.StartTime, w.EndTime, w.SessionDuration))
			}
		} else {
			rows = append(rows,
				slotRowForPool(svc, false, "Weekdays", "-", "-", 0),
				slotRowForPool(svc, true, "Weekends", "-", "-", 0),
			)
		}

		report.ByCategory[category] = append(report.ByCategory[category], DealSummary{
			ID:           svc.ID,
			ProviderName: svc.ProviderName,
			Location:     svc.Location,
			DealActive:   svc.DealActive,
			Slots:        rows,
		})
	}

	if report.Bookings.Total, err = s.BookingRepo.CountAll(); err != nil {
		return nil, fmt.Errorf("counting bookings: %w", err)
	}
	if report.Bookings.Pending, err = s.BookingRepo.CountByStatus(models.BookingPending); err != nil {
		return nil, fmt.Errorf("counting pending bookings: %w", err)
	}
	if report.Bookings.Confirmed, err = s.BookingRepo.CountByStatus(models.BookingConfirmed); err != nil {
		return nil, fmt.Errorf("counting confirmed bookings: %w", err)
	}
	if report.Bookings.Completed, err = s.BookingRepo.CountByStatus(models.BookingCompleted); err != nil {
		return nil, fmt.Errorf("counting completed bookings: %w", err)
	}
	if report.Bookings.Cancelled, err = s.BookingRepo.CountByStatus(models.BookingCancelled); err != nil {
		return nil, fmt.Errorf("counting cancelled bookings: %w", err)
	}
	if report.Bookings.Today, err = s.BookingRepo.CountCreatedSince(startOfDay); err != nil {
		return nil, fmt.Errorf("counting today's bookings: %w", err)
	}
	if report.Bookings.Week, err = s.BookingRepo.CountCreatedSince(startOfWeek); err != nil {
		return nil, fmt.Errorf("counting this week's bookings: %w", err)
	}
	if report.Bookings.TotalRevenue, err = s.BookingRepo.RevenueTotal(); err != nil {
		return nil, fmt.Errorf("aggregating revenue: %w", err)
	}

	return report, nil
}
