package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"slowday/handlers"
	"slowday/middleware"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/provider-setup", hb.CompleteProviderSetupHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.MeHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.DELETE("/me", hb.DeleteAccountHandler)
		api.POST("/saved/:serviceID", hb.ToggleSavedServiceHandler)
	}
}

// RegisterServiceRoutes registers the public deal feed and provider
// listing management.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.ListDealsHandler)
		api.GET("/types", hb.ServiceTypesHandler)
		api.GET("/:id", hb.GetDealHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("", hb.CreateServiceHandler)
		protected.PUT("/:id", hb.UpdateServiceHandler)
		protected.DELETE("/:id", hb.DeleteServiceHandler)
		protected.PATCH("/:id/deal", hb.ToggleDealHandler)
		protected.GET("/mine/list", hb.MyServicesHandler)
	}
}

// RegisterBookingRoutes registers booking creation, lifecycle, and
// query endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateBookingHandler)
		api.PATCH("/:id/status", hb.UpdateBookingStatusHandler)
		api.GET("/mine", hb.MyBookingsHandler)
		api.GET("/provider", hb.ProviderBookingsHandler)
		api.GET("/provider/analytics", hb.ProviderAnalyticsHandler)
	}
}

// RegisterLeadRoutes registers the staff-only CRM funnel endpoints.
func RegisterLeadRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/leads")
	{
		api.Use(middleware.AdminKeyMiddleware())
		api.POST("", hb.CreateLeadHandler)
		api.GET("", hb.ListLeadsHandler)
		api.GET("/:id", hb.GetLeadHandler)
		api.PUT("/:id", hb.UpdateLeadHandler)
		api.DELETE("/:id", hb.DeleteLeadHandler)
		api.PATCH("/:id/status", hb.UpdateLeadStatusHandler)
		api.POST("/:id/convert", hb.ConvertLeadHandler)
	}
}

// RegisterAdminRoutes registers staff analytics endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.AdminKeyMiddleware())
		api.GET("/analytics", hb.PlatformAnalyticsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "SlowDay Deals API"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "x-admin-key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterLeadRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
