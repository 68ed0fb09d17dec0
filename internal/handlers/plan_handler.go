package handlers

import (
	"net/http"

	"tripplanner_backend/internal/apperrors"
	"tripplanner_backend/internal/services"
	"tripplanner_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	planService services.PlanService
}

func NewPlanHandler(planService services.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// CreatePlan handles POST /plans.
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req dto.CreatePlanRequest
	if !BindAndValidate(c, &req) {
		return
	}

	plan, err := h.planService.CreatePlan(c.Request.Context(), &req)
	if err != nil {
		apperrors.HandleAny(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Plan created successfully",
		"newPlan": plan,
	})
}

// GetPlans handles GET /plans with browse filters in the query string.
func (h *PlanHandler) GetPlans(c *gin.Context) {
	filter := dto.PlanFilterFromQuery(c.Request.URL.Query())

	plans, err := h.planService.GetPlans(c.Request.Context(), filter)
	if err != nil {
		apperrors.HandleAny(c, err)
		return
	}

	c.JSON(http.StatusOK, plans)
}

// GetPlan handles GET /plans/:planId, returning the plan with its resolved
// itinerary documents.
func (h *PlanHandler) GetPlan(c *gin.Context) {
	planID, ok := ParamUint(c, "planId")
	if !ok {
		return
	}

	result, err := h.planService.GetPlanWithItineraries(c.Request.Context(), planID)
	if err != nil {
		apperrors.HandleAny(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdatePlan handles PUT /plans/:planId.
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	planID, ok := ParamUint(c, "planId")
	if !ok {
		return
	}

	var req dto.UpdatePlanRequest
	if !BindAndValidate(c, &req) {
		return
	}

	plan, err := h.planService.UpdatePlan(c.Request.Context(), planID, &req)
	if err != nil {
		apperrors.HandleAny(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Plan updated successfully",
		"updatedPlan": plan,
	})
}
