package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	serviceRepo "slowday/database/repository/service"
	"slowday/models"
	"slowday/services/deal"
)

func dealErrorStatus(err error) int {
	var verr *deal.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, deal.ErrServiceNotFound):
		return http.StatusNotFound
	case errors.Is(err, deal.ErrNotOwner):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// ListDealsHandler returns the public feed of active deals, optionally
// filtered by category and location.
func (hb *HandlerBundle) ListDealsHandler(c *gin.Context) {
	q := serviceRepo.ListQuery{
		ServiceType: c.Query("serviceType"),
		Location:    c.Query("location"),
	}
	deals, err := hb.Deals.ListActiveDeals(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list deals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": deals, "count": len(deals)})
}

// GetDealHandler returns one listing by ID.
func (hb *HandlerBundle) GetDealHandler(c *gin.Context) {
	svc, err := hb.Deals.GetService(c.Param("id"))
	if err != nil {
		c.JSON(dealErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ServiceTypesHandler returns the closed set of deal categories.
func (hb *HandlerBundle) ServiceTypesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"serviceTypes": models.ServiceTypes})
}

// CreateServiceHandler creates a listing owned by the authenticated
// provider.
func (hb *HandlerBundle) CreateServiceHandler(c *gin.Context) {
	if !requireProvider(c) {
		return
	}
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := hb.Deals.CreateService(c.GetString("userID"), &svc)
	if err != nil {
		c.JSON(dealErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateServiceHandler replaces the mutable fields of an owned listing.
func (hb *HandlerBundle) UpdateServiceHandler(c *gin.Context) {
	if !requireProvider(c) {
		return
	}
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	svc.ID = c.Param("id")

	updated, err := hb.Deals.UpdateService(c.GetString("userID"), &svc)
	if err != nil {
		c.JSON(dealErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteServiceHandler soft-deletes an owned listing.
func (hb *HandlerBundle) DeleteServiceHandler(c *gin.Context) {
	if !requireProvider(c) {
		return
	}
	if err := hb.Deals.DeleteService(c.GetString("userID"), c.Param("id")); err != nil {
		c.JSON(dealErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
}

// ToggleDealHandler flips a listing's deal on or off.
func (hb *HandlerBundle) ToggleDealHandler(c *gin.Context) {
	if !requireProvider(c) {
		return
	}
	var req struct {
		Active bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	svc, err := hb.Deals.SetDealActive(c.GetString("userID"), c.Param("id"), req.Active)
	if err != nil {
		c.JSON(dealErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// MyServicesHandler lists the authenticated provider's own listings,
// including inactive ones.
func (hb *HandlerBundle) MyServicesHandler(c *gin.Context) {
	if !requireProvider(c) {
		return
	}
	services, err := hb.Deals.ListProviderServices(c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services, "count": len(services)})
}
