package handlers

import (
	"net/http"

	"helperhub/models"
	"helperhub/services/account"
	"helperhub/services/settings"
	"helperhub/utils"

	"github.com/gin-gonic/gin"
)

// SettingsHandler serves settings and account management.
type SettingsHandler struct {
	SettingsSvc settings.SettingsService
	AccountSvc  account.AccountService
}

// GetSettingsHandler handles GET /api/settings.
func (h *SettingsHandler) GetSettingsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	s, err := h.SettingsSvc.GetSettings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "settings fetch failed", err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// UpdateSettingsHandler handles PATCH /api/settings.
func (h *SettingsHandler) UpdateSettingsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.SettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "invalid settings payload", utils.NewValidationError("Invalid settings."))
		return
	}
	s, err := h.SettingsSvc.UpdateSettings(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, "settings update failed", err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// RegisterPushTokenHandler handles PUT /api/settings/push-token.
func (h *SettingsHandler) RegisterPushTokenHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var body struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, "invalid push token payload", utils.NewValidationError("Push token is required."))
		return
	}
	if err := h.SettingsSvc.RegisterPushToken(c.Request.Context(), userID, body.Token); err != nil {
		respondError(c, "push token registration failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ChangePasswordHandler handles PUT /api/account/password.
func (h *SettingsHandler) ChangePasswordHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.PasswordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "invalid password payload", utils.NewValidationError("Please fill in both password fields."))
		return
	}
	if err := h.AccountSvc.ChangePassword(c.Request.Context(), userID, req.NewPassword, req.ConfirmPassword); err != nil {
		respondError(c, "password change failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

// DeleteAccountHandler handles DELETE /api/account.
func (h *SettingsHandler) DeleteAccountHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.AccountDeletionRequest
	_ = c.ShouldBindJSON(&req)
	if err := h.AccountSvc.DeleteAccount(c.Request.Context(), userID, req.Confirm); err != nil {
		respondError(c, "account deletion failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}
