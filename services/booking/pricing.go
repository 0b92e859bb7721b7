package booking

import (
	"time"

	"slowday/models"
)

// IsWeekendDay classifies a timestamp: Saturday and Sunday are weekend,
// everything else weekday. The classification depends only on the
// day-of-week and is computed exactly once, at booking creation.
func IsWeekendDay(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsWeekendDayName classifies an availability-window day label.
func IsWeekendDayName(day string) bool {
	return day == "Saturday" || day == "Sunday"
}

// Quote returns the price in effect for the given service at the given
// time, along with the day classification. Both values are frozen into
// the booking and never recomputed afterwards.
func Quote(service *models.Service, t time.Time) (price float64, weekend bool) {
	weekend = IsWeekendDay(t)
	if weekend {
		return service.WeekendPrice, true
	}
	return service.WeekdayPrice, false
}
