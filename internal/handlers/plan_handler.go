package handlers

import (
	"net/http"

	"fitlife-service/internal/domain/plan"
	"fitlife-service/internal/pkg/response"
	planservice "fitlife-service/internal/service/plan"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	planService *planservice.PlanService
}

func NewPlanHandler(planService *planservice.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

func (h *PlanHandler) Create(c *gin.Context) {
	var req plan.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", err)
		return
	}

	p, err := h.planService.CreatePlan(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err, "Failed to create plan")
		return
	}

	response.Success(c, http.StatusCreated, "Plan created", p)
}

// List returns active plans only. The back office uses ListAll to see
// soft-disabled tiers too.
func (h *PlanHandler) List(c *gin.Context) {
	plans, err := h.planService.ListPlans(c.Request.Context(), true)
	if err != nil {
		response.FromError(c, err, "Failed to list plans")
		return
	}

	response.Success(c, http.StatusOK, "OK", plans)
}

func (h *PlanHandler) ListAll(c *gin.Context) {
	plans, err := h.planService.ListPlans(c.Request.Context(), false)
	if err != nil {
		response.FromError(c, err, "Failed to list plans")
		return
	}

	response.Success(c, http.StatusOK, "OK", plans)
}

func (h *PlanHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.ValidationError(c, "Invalid plan ID", err)
		return
	}

	p, err := h.planService.GetPlan(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "Plan not found")
		return
	}

	response.Success(c, http.StatusOK, "OK", p)
}

func (h *PlanHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.ValidationError(c, "Invalid plan ID", err)
		return
	}

	var req plan.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", err)
		return
	}

	p, err := h.planService.UpdatePlan(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err, "Failed to update plan")
		return
	}

	response.Success(c, http.StatusOK, "Plan updated", p)
}

func (h *PlanHandler) Activate(c *gin.Context) {
	h.setActive(c, true, "Plan activated")
}

func (h *PlanHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false, "Plan deactivated")
}

func (h *PlanHandler) setActive(c *gin.Context, active bool, message string) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.ValidationError(c, "Invalid plan ID", err)
		return
	}

	if err := h.planService.SetPlanActive(c.Request.Context(), id, active); err != nil {
		response.FromError(c, err, "Failed to toggle plan")
		return
	}

	response.Success(c, http.StatusOK, message, nil)
}
