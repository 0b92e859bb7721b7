package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slowday/utils"
)

// PlatformAnalyticsHandler returns the staff-facing platform report.
func (hb *HandlerBundle) PlatformAnalyticsHandler(c *gin.Context) {
	report, err := hb.Admin.GetPlatformAnalytics()
	if err != nil {
		utils.GetLogger().Error("platform analytics failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build analytics"})
		return
	}
	c.JSON(http.StatusOK, report)
}
