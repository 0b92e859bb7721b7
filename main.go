package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"slowday/config"
	"slowday/cron"
	"slowday/database"
	bookingRepoPkg "slowday/database/repository/booking"
	leadRepoPkg "slowday/database/repository/lead"
	serviceRepoPkg "slowday/database/repository/service"
	userRepoPkg "slowday/database/repository/user"
	"slowday/handlers"
	"slowday/routes"
	"slowday/services/admin"
	"slowday/services/booking"
	"slowday/services/deal"
	"slowday/services/lead"
	"slowday/services/notification"
	"slowday/services/user"
	"slowday/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	leadRepo := leadRepoPkg.NewMongoLeadRepo()

	// Notification pipeline: handlers enqueue, the async worker delivers.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()
	notifier := notification.NewQueueDispatcher(asynqClient)

	deliverer := &notification.Deliverer{
		Mailer: notification.NewSendGridMailer(config.AppConfig.SendGridAPIKey, config.AppConfig.FromEmail),
		SMS:    notification.NewTwilioSender(config.AppConfig.TwilioAccountSID, config.AppConfig.TwilioAuthToken, config.AppConfig.FromPhone),
	}
	cron.InitNotificationWorker(deliverer)

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}

	dealService := &deal.DefaultDealService{
		Repo:  serviceRepo,
		Cache: utils.GetCacheClient(),
	}

	bookingService := &booking.DefaultBookingService{
		Repo:                bookingRepo,
		ServiceRepo:         serviceRepo,
		UserRepo:            userRepo,
		Notifier:            notifier,
		ReleaseSlotOnCancel: config.AppConfig.ReleaseSlotOnCancel,
	}

	leadService := &lead.DefaultLeadService{
		Repo:          leadRepo,
		UserRepo:      userRepo,
		ServiceRepo:   serviceRepo,
		Notifier:      notifier,
		SetupLinkBase: config.AppConfig.SetupLinkBase,
	}

	adminService := &admin.DefaultAdminService{
		UserRepo:    userRepo,
		ServiceRepo: serviceRepo,
		BookingRepo: bookingRepo,
	}

	digest := cron.InitDailyDigest(bookingRepo, serviceRepo, notifier)
	defer digest.Stop()

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,
		Users:    userService,
		Deals:    dealService,
		Bookings: bookingService,
		Leads:    leadService,
		Admin:    adminService,
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
