package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"youngeru/internal/models/request_models"
	"youngeru/internal/services"
	"youngeru/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{plannerService: plannerService}
}

// CreatePlan godoc
// @Summary Generate a supplement plan
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.PlanRequest true "Planner inputs"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /planner/plan [post]
func (p *PlannerController) CreatePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Select at least one goal")
		return
	}

	plan, err := p.plannerService.CreatePlan(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Plan generated successfully!"
	if !plan.Saved {
		message = "Plan generated, but failed to save"
	}
	utils.RespondSuccess(c, plan, message)
}

func (p *PlannerController) ListSessions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	sessions, err := p.plannerService.ListSessions(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, sessions, "")
}
