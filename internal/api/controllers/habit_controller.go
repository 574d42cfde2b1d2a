package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"youngeru/internal/models/request_models"
	"youngeru/internal/services"
	"youngeru/pkg/utils"
)

type HabitController struct {
	habitService services.HabitServiceInterface
}

func NewHabitController(habitService services.HabitServiceInterface) *HabitController {
	return &HabitController{habitService: habitService}
}

func (h *HabitController) ListHabits(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	habits, err := h.habitService.ListHabits(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, habits, "")
}

func (h *HabitController) CreateHabit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req request_models.CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	habit, err := h.habitService.CreateHabit(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, habit, "Habit created")
}

func (h *HabitController) ToggleToday(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	habit, err := h.habitService.ToggleToday(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, habit, "")
}
