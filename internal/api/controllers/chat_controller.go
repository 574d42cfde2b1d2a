package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"youngeru/internal/models/request_models"
	"youngeru/internal/services"
	"youngeru/pkg/middleware"
	"youngeru/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{chatService: chatService}
}

// Chat godoc
// @Summary Ask the AI assistant
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Conversation"
// @Success 200 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /ai/chat [post]
func (ch *ChatController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Messages array is required")
		return
	}
	if req.UserID == "" {
		req.UserID = c.GetString(middleware.ContextUserID)
	}

	reply, err := ch.chatService.Chat(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, reply, "")
}
