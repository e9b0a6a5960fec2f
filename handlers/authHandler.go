package handlers

import (
	"AgendaDental/models"
	"AgendaDental/services"
	"AgendaDental/utils"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	AuthService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{AuthService: authService}
}

// Login authenticates the caller and returns the access token along with the
// account summary.
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Email  string `json:"email"`
		Secret string `json:"secret"`
	}

	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	token, account, err := h.AuthService.Login(ctx, credentials.Email, credentials.Secret)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":         account.ID,
			"email":      account.Email,
			"role":       account.Role,
			"patient_id": account.PatientID,
		},
	})
}

// GetAccounts lists every account with the linked patient name. Admin only.
func (h *AuthHandler) GetAccounts(c *gin.Context) {
	accounts, err := h.AuthService.GetAccountSummaries(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// SendResetCode emails a password reset code. Only admin accounts hold a
// password, so patient accounts are rejected from the flow.
func (h *AuthHandler) SendResetCode(c *gin.Context) {
	var data struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	account, err := h.AuthService.GetActiveByEmail(ctx, data.Email)
	if err != nil || account == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}
	if account.Role != models.RoleAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Account has no password to reset"})
		return
	}

	code := utils.GenerateResetCode()
	if err := utils.SetResetCode(ctx, account.Email, code); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to set reset code: %v", err)})
		return
	}

	if err := utils.SendResetCodeEmail(account.Email, code); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to send reset code email: %v", err)})
		return
	}

	c.Status(http.StatusOK)
}

// ChangePassword updates an admin account's password after checking the
// emailed reset code.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var data struct {
		Email       string `json:"email"`
		Code        string `json:"code"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := utils.ValidatePasswordReset(data.Code, data.NewPassword); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	storedCode, err := utils.GetResetCode(ctx, data.Email)
	if err != nil || storedCode == nil || *storedCode != data.Code {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid reset code"})
		return
	}

	account, err := h.AuthService.GetActiveByEmail(ctx, data.Email)
	if err != nil || account == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}

	hashedPassword, err := utils.HashPassword(data.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to hash password: %v", err)})
		return
	}

	if err := h.AuthService.UpdatePassword(ctx, account.ID, hashedPassword); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to update password: %v", err)})
		return
	}

	if err := utils.DeleteResetCode(ctx, data.Email); err != nil {
		// Code expires on its own in 15 minutes.
		c.Status(http.StatusOK)
		return
	}
	c.Status(http.StatusOK)
}
