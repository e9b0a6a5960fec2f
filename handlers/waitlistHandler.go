package handlers

import (
	"AgendaDental/services"
	"AgendaDental/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type WaitlistHandler struct {
	service services.WaitlistService
}

func NewWaitlistHandler(service services.WaitlistService) *WaitlistHandler {
	return &WaitlistHandler{service: service}
}

// JoinWaitlist records a standby request for an earlier slot.
func (h *WaitlistHandler) JoinWaitlist(c *gin.Context) {
	var req utils.JoinWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	id, err := h.service.Join(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
