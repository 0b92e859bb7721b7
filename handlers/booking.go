package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"slowday/models"
	"slowday/services/booking"
)

func bookingErrorStatus(err error) int {
	switch {
	case errors.Is(err, booking.ErrServiceNotFound),
		errors.Is(err, booking.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrDealInactive),
		errors.Is(err, booking.ErrCapacityExceeded),
		errors.Is(err, booking.ErrTerminalStatus):
		return http.StatusConflict
	case errors.Is(err, booking.ErrNotAuthorized),
		errors.Is(err, booking.ErrCustomerCancelOnly):
		return http.StatusForbidden
	case errors.Is(err, booking.ErrInvalidStatus),
		errors.Is(err, booking.ErrRescheduleTimeRequired),
		errors.Is(err, booking.ErrMissingFields):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// CreateBookingHandler books a slot on a deal for the authenticated
// customer.
func (hb *HandlerBundle) CreateBookingHandler(c *gin.Context) {
	var req struct {
		ServiceID       string    `json:"serviceId" binding:"required"`
		CustomerName    string    `json:"customerName"`
		CustomerContact string    `json:"customerContact" binding:"required"`
		PreferredTime   time.Time `json:"preferredTime" binding:"required"`
		Notes           string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := hb.Bookings.CreateBooking(booking.CreateBookingRequest{
		CustomerID:      c.GetString("userID"),
		CustomerName:    req.CustomerName,
		ServiceID:       req.ServiceID,
		CustomerContact: req.CustomerContact,
		PreferredTime:   req.PreferredTime,
		Notes:           req.Notes,
	})
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, b)
}

// UpdateBookingStatusHandler moves a booking through its lifecycle.
// Role checks happen in the service: providers may confirm, reject,
// reschedule, complete, or cancel; customers may only cancel.
func (hb *HandlerBundle) UpdateBookingStatusHandler(c *gin.Context) {
	var req struct {
		Status  models.BookingStatus `json:"status" binding:"required"`
		NewTime *time.Time           `json:"newTime"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := hb.Bookings.UpdateBookingStatus(c.GetString("userID"), c.Param("id"), req.Status, req.NewTime)
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

// MyBookingsHandler lists the authenticated customer's bookings.
func (hb *HandlerBundle) MyBookingsHandler(c *gin.Context) {
	bookings, err := hb.Bookings.GetCustomerBookings(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// ProviderBookingsHandler lists bookings against the authenticated
// provider's services, optionally filtered by status.
func (hb *HandlerBundle) ProviderBookingsHandler(c *gin.Context) {
	if !requireProvider(c) {
		return
	}
	status := models.BookingStatus(c.Query("status"))
	if status != "" && !models.ValidBookingStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking status"})
		return
	}

	bookings, err := hb.Bookings.GetProviderBookings(c.GetString("userID"), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// ProviderAnalyticsHandler returns the provider dashboard report.
func (hb *HandlerBundle) ProviderAnalyticsHandler(c *gin.Context) {
	if !requireProvider(c) {
		return
	}
	report, err := hb.Bookings.GetProviderAnalytics(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build analytics"})
		return
	}
	c.JSON(http.StatusOK, report)
}
