package handlers

import (
	"net/http"

	"fitlife-service/internal/domain/checkin"
	"fitlife-service/internal/pkg/response"
	checkinservice "fitlife-service/internal/service/checkin"

	"github.com/gin-gonic/gin"
)

type CheckinHandler struct {
	checkinService *checkinservice.CheckinService
}

func NewCheckinHandler(checkinService *checkinservice.CheckinService) *CheckinHandler {
	return &CheckinHandler{checkinService: checkinService}
}

func (h *CheckinHandler) Create(c *gin.Context) {
	var req checkin.CreateCheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", err)
		return
	}

	record, err := h.checkinService.CreateCheckin(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err, "Failed to record check-in")
		return
	}

	response.Success(c, http.StatusCreated, "Check-in recorded", record)
}

// List returns one day's check-ins; the date query param defaults to today.
func (h *CheckinHandler) List(c *gin.Context) {
	records, err := h.checkinService.ListCheckins(c.Request.Context(), c.Query("date"))
	if err != nil {
		response.FromError(c, err, "Failed to list check-ins")
		return
	}

	response.Success(c, http.StatusOK, "OK", records)
}

func (h *CheckinHandler) ListByMember(c *gin.Context) {
	memberID, err := parseIDParam(c, "id")
	if err != nil {
		response.ValidationError(c, "Invalid member ID", err)
		return
	}

	records, err := h.checkinService.ListMemberCheckins(c.Request.Context(), memberID)
	if err != nil {
		response.FromError(c, err, "Failed to list check-ins")
		return
	}

	response.Success(c, http.StatusOK, "OK", records)
}
