package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type dashboardQuery struct {
	View string `form:"view"`
	Type string `form:"type"`
}

// GetDashboard returns every widget of the dashboard page.
func (h *HTTPHandler) GetDashboard(c *gin.Context) {
	var query dashboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	summary, err := h.dashboard.Summary(ctx, query.View, query.Type)
	if err != nil {
		logrus.WithError(err).Error("failed to build dashboard summary")
		InternalError(c, "failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *HTTPHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": h.dashboard.HasRepository(),
	})
}
