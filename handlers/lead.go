package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	leadRepo "slowday/database/repository/lead"
	"slowday/models"
	"slowday/services/lead"
)

func leadErrorStatus(err error) int {
	var verr *lead.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, lead.ErrLeadNotFound):
		return http.StatusNotFound
	case errors.Is(err, lead.ErrDuplicateEmail),
		errors.Is(err, lead.ErrAlreadyOnboarded):
		return http.StatusConflict
	case errors.Is(err, lead.ErrInvalidStatus):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// CreateLeadHandler records a prospective business in the funnel.
func (hb *HandlerBundle) CreateLeadHandler(c *gin.Context) {
	var l models.Lead
	if err := c.ShouldBindJSON(&l); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := hb.Leads.CreateLead(&l)
	if err != nil {
		c.JSON(leadErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListLeadsHandler lists the funnel, optionally filtered by status,
// assignee, or city.
func (hb *HandlerBundle) ListLeadsHandler(c *gin.Context) {
	q := leadRepo.ListQuery{
		Status:     models.LeadStatus(c.Query("status")),
		AssigneeID: c.Query("assigneeId"),
		City:       c.Query("city"),
	}
	if q.Status != "" && !models.ValidLeadStatus(q.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lead status"})
		return
	}

	leads, err := hb.Leads.ListLeads(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list leads"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads, "count": len(leads)})
}

// GetLeadHandler returns one lead by ID.
func (hb *HandlerBundle) GetLeadHandler(c *gin.Context) {
	l, err := hb.Leads.GetLead(c.Param("id"))
	if err != nil {
		c.JSON(leadErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, l)
}

// UpdateLeadHandler replaces a lead's funnel details.
func (hb *HandlerBundle) UpdateLeadHandler(c *gin.Context) {
	var l models.Lead
	if err := c.ShouldBindJSON(&l); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	l.ID = c.Param("id")

	updated, err := hb.Leads.UpdateLead(&l)
	if err != nil {
		c.JSON(leadErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteLeadHandler removes a lead from the funnel.
func (hb *HandlerBundle) DeleteLeadHandler(c *gin.Context) {
	if err := hb.Leads.DeleteLead(c.Param("id")); err != nil {
		c.JSON(leadErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "lead deleted"})
}

// UpdateLeadStatusHandler moves a lead through the funnel.
func (hb *HandlerBundle) UpdateLeadStatusHandler(c *gin.Context) {
	var req struct {
		Status models.LeadStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := hb.Leads.UpdateLeadStatus(c.Param("id"), req.Status); err != nil {
		c.JSON(leadErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

// ConvertLeadHandler materializes a lead into a provider account and a
// live listing. Validation failures list every missing field at once.
func (hb *HandlerBundle) ConvertLeadHandler(c *gin.Context) {
	result, err := hb.Leads.ConvertLead(c.Param("id"))
	if err != nil {
		var verr *lead.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "missing": verr.Missing})
			return
		}
		c.JSON(leadErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, result)
}
