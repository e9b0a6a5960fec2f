package handlers

import (
	"AgendaDental/services"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
)

func respondWith(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondServiceError(c, err)
	return w
}

func TestRespondServiceErrorValidation(t *testing.T) {
	vErr := validation.Errors{"name": errors.New("cannot be blank")}
	w := respondWith(fmt.Errorf("invalid patient data: %w", vErr))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot be blank")
}

func TestRespondServiceErrorInvalidStatus(t *testing.T) {
	w := respondWith(services.ErrInvalidStatus)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRespondServiceErrorNoLinkedPatient(t *testing.T) {
	w := respondWith(services.ErrNoLinkedPatient)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRespondServiceErrorStoreFailure(t *testing.T) {
	w := respondWith(errors.New("connection refused"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}
