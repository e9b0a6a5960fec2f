package handlers

import (
	"AgendaDental/services"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// respondServiceError maps a service error to a status: payload validation
// failures are the caller's fault, everything else surfaces as a store
// failure with the underlying message.
func respondServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	var vErrs validation.Errors
	if errors.As(err, &vErrs) ||
		errors.Is(err, services.ErrInvalidStatus) ||
		errors.Is(err, services.ErrNoLinkedPatient) {
		status = http.StatusBadRequest
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
