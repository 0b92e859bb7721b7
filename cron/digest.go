package cron

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	bookingRepo "slowday/database/repository/booking"
	serviceRepo "slowday/database/repository/service"
	"slowday/models"
	"slowday/services/notification"
	"slowday/utils"
)

// InitDailyDigest schedules a 9am provider digest: each provider with
// pending bookings gets one summary per service. Returns the scheduler
// so the caller can stop it on shutdown.
func InitDailyDigest(bookings bookingRepo.BookingRepository, services serviceRepo.ServiceRepository, notifier notification.NotificationService) *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("0 9 * * *", func() {
		runDailyDigest(bookings, services, notifier)
	}); err != nil {
		utils.GetLogger().Error("failed to schedule daily digest", zap.Error(err))
		return c
	}
	c.Start()
	return c
}

func runDailyDigest(bookings bookingRepo.BookingRepository, services serviceRepo.ServiceRepository, notifier notification.NotificationService) {
	logger := utils.GetLogger()

	pending, err := bookings.ListByStatus(models.BookingPending)
	if err != nil {
		logger.Error("daily digest: listing pending bookings", zap.Error(err))
		return
	}
	if len(pending) == 0 {
		return
	}

	byService := make(map[string]int)
	for _, b := range pending {
		byService[b.ServiceID]++
	}

	for serviceID, count := range byService {
		svc, err := services.GetByID(serviceID)
		if err != nil {
			logger.Warn("daily digest: loading service",
				zap.String("serviceID", serviceID), zap.Error(err))
			continue
		}
		notifier.NotifyProviderDigest(svc, count)
	}

	logger.Info("daily digest dispatched", zap.Int("services", len(byService)))
}
