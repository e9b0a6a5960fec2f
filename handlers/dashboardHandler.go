package handlers

import (
	"AgendaDental/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	service services.DashboardService
}

func NewDashboardHandler(service services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Dashboard returns today's booking count, today's completed revenue, and the
// 30-day no-show count. Admin only.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// StoreInfo returns the table row counts for the admin database screen.
func (h *DashboardHandler) StoreInfo(c *gin.Context) {
	info, err := h.service.StoreInfo(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}
