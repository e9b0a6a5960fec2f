package handlers

import (
	"AgendaDental/middlewares"
	"AgendaDental/services"
	"AgendaDental/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	service services.AppointmentService
}

func NewAppointmentHandler(service services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// ListAppointments returns appointments scoped by the caller's role (see the
// service). The optional ?date=YYYY-MM-DD query filters to one calendar day.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	claims, err := middlewares.ExtractClaimsFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Claims not found in context"})
		return
	}

	date := c.DefaultQuery("date", "")
	views, err := h.service.List(c.Request.Context(), claims, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// MyAppointments returns the calling patient's own appointments.
func (h *AppointmentHandler) MyAppointments(c *gin.Context) {
	claims, err := middlewares.ExtractClaimsFromContext(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Claims not found in context"})
		return
	}

	views, err := h.service.MyAppointments(c.Request.Context(), claims)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// CreateAppointment books a slot for the patient id in the body.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req utils.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// UpdateAppointment replaces an appointment's time and status. Admin only.
// rowsChanged 0 means the id was not found; that is still a 200.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, err := parseAppointmentID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	var req utils.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	rows, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rowsChanged": rows})
}

// DeleteAppointment hard-deletes an appointment. Admin only.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, err := parseAppointmentID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	rows, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rowsChanged": rows})
}

func parseAppointmentID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
