package handlers

import (
	"AgendaDental/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProcedureHandler struct {
	service services.ProcedureService
}

func NewProcedureHandler(service services.ProcedureService) *ProcedureHandler {
	return &ProcedureHandler{service: service}
}

// GetAllProcedures lists the procedure catalogue. Public: the booking form
// needs it before login.
func (h *ProcedureHandler) GetAllProcedures(c *gin.Context) {
	procedures, err := h.service.GetAllProcedures(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, procedures)
}
