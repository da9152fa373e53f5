package handlers

import (
	"net/http"

	"fitlife-service/internal/domain/settings"
	"fitlife-service/internal/pkg/response"
	settingsservice "fitlife-service/internal/service/settings"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService *settingsservice.SettingsService
}

func NewSettingsHandler(settingsService *settingsservice.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "Failed to load settings")
		return
	}

	response.Success(c, http.StatusOK, "OK", s)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req settings.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", err)
		return
	}

	s, err := h.settingsService.UpdateSettings(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err, "Failed to update settings")
		return
	}

	response.Success(c, http.StatusOK, "Settings updated", s)
}

func (h *SettingsHandler) GetNotifications(c *gin.Context) {
	n, err := h.settingsService.GetNotificationSettings(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "Failed to load notification settings")
		return
	}

	response.Success(c, http.StatusOK, "OK", n)
}

func (h *SettingsHandler) UpdateNotifications(c *gin.Context) {
	var req settings.UpdateNotificationSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", err)
		return
	}

	n, err := h.settingsService.UpdateNotificationSettings(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err, "Failed to update notification settings")
		return
	}

	response.Success(c, http.StatusOK, "Notification settings updated", n)
}
