package handlers

import (
	"net/http"

	"fitlife-service/internal/domain/schedule"
	"fitlife-service/internal/pkg/response"
	scheduleservice "fitlife-service/internal/service/schedule"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleService *scheduleservice.ScheduleService
}

func NewScheduleHandler(scheduleService *scheduleservice.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

func (h *ScheduleHandler) CreateClass(c *gin.Context) {
	var req schedule.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", err)
		return
	}

	class, err := h.scheduleService.CreateClass(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err, "Failed to create class")
		return
	}

	response.Success(c, http.StatusCreated, "Class created", class)
}

func (h *ScheduleHandler) GetClass(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.ValidationError(c, "Invalid class ID", err)
		return
	}

	class, err := h.scheduleService.GetClass(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "Class not found")
		return
	}

	response.Success(c, http.StatusOK, "OK", class)
}

func (h *ScheduleHandler) ListClasses(c *gin.Context) {
	classes, err := h.scheduleService.ListClasses(c.Request.Context())
	if err != nil {
		response.FromError(c, err, "Failed to list classes")
		return
	}

	response.Success(c, http.StatusOK, "OK", classes)
}

func (h *ScheduleHandler) UpdateClass(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.ValidationError(c, "Invalid class ID", err)
		return
	}

	var req schedule.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", err)
		return
	}

	class, err := h.scheduleService.UpdateClass(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err, "Failed to update class")
		return
	}

	response.Success(c, http.StatusOK, "Class updated", class)
}

// CreateReservation books a seat; a full class or an existing booking for
// the same member, class and date returns 409.
func (h *ScheduleHandler) CreateReservation(c *gin.Context) {
	var req schedule.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", err)
		return
	}

	res, err := h.scheduleService.CreateReservation(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err, "Failed to create reservation")
		return
	}

	response.Success(c, http.StatusCreated, "Reservation created", res)
}

func (h *ScheduleHandler) ListReservations(c *gin.Context) {
	var filters schedule.ReservationListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "Invalid query parameters", err)
		return
	}

	reservations, err := h.scheduleService.ListReservations(c.Request.Context(), &filters)
	if err != nil {
		response.FromError(c, err, "Failed to list reservations")
		return
	}

	response.Success(c, http.StatusOK, "OK", reservations)
}

func (h *ScheduleHandler) CancelReservation(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.ValidationError(c, "Invalid reservation ID", err)
		return
	}

	if err := h.scheduleService.CancelReservation(c.Request.Context(), id); err != nil {
		response.FromError(c, err, "Failed to cancel reservation")
		return
	}

	response.Success(c, http.StatusOK, "Reservation cancelled", nil)
}
