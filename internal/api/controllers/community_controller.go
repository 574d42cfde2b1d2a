package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"youngeru/internal/models/request_models"
	"youngeru/internal/services"
	"youngeru/pkg/utils"
)

type CommunityController struct {
	communityService services.CommunityServiceInterface
}

func NewCommunityController(communityService services.CommunityServiceInterface) *CommunityController {
	return &CommunityController{communityService: communityService}
}

// ListQuestions godoc
// @Summary List community questions
// @Tags Community
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /community/questions [get]
func (cc *CommunityController) ListQuestions(c *gin.Context) {
	page, pageSize, err := pagination(c, 20)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	questions, err := cc.communityService.ListQuestions(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, questions, "")
}

func (cc *CommunityController) GetQuestion(c *gin.Context) {
	question, err := cc.communityService.GetQuestion(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, question, "")
}

func (cc *CommunityController) AskQuestion(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req request_models.AskQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Title and body are required")
		return
	}

	question, err := cc.communityService.AskQuestion(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, question, "Question posted")
}

func (cc *CommunityController) AnswerQuestion(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req request_models.AnswerQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Answer body is required")
		return
	}

	answer, err := cc.communityService.AnswerQuestion(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, answer, "Answer posted")
}
