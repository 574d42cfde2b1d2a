package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"youngeru/internal/models/request_models"
	"youngeru/internal/models/response_models"
	"youngeru/internal/quiz"
	"youngeru/internal/services"
	"youngeru/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{quizService: quizService}
}

// StartSession godoc
// @Summary Start a quiz session
// @Description Creates a session already on the welcome step
// @Tags Quiz
// @Produce json
// @Success 201 {object} utils.APIResponse
// @Router /quiz/sessions [post]
func (q *QuizController) StartSession(c *gin.Context) {
	session, err := q.quizService.Start(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, session, "Quiz session started")
}

func (q *QuizController) GetSession(c *gin.Context) {
	session, err := q.quizService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "")
}

// SetAnswer godoc
// @Summary Answer a quiz field
// @Description Overwrites a single-select field or toggles a goal
// @Tags Quiz
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request_models.SetAnswerRequest true "Field and value"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /quiz/sessions/{id}/answers [put]
func (q *QuizController) SetAnswer(c *gin.Context) {
	var req request_models.SetAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := q.quizService.SetAnswer(c.Request.Context(), c.Param("id"), quiz.Field(req.Field), req.Value)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "")
}

func (q *QuizController) Advance(c *gin.Context) {
	q.step(c, q.quizService.Advance)
}

func (q *QuizController) Retreat(c *gin.Context) {
	q.step(c, q.quizService.Retreat)
}

func (q *QuizController) Reset(c *gin.Context) {
	q.step(c, q.quizService.Reset)
}

func (q *QuizController) step(c *gin.Context, op func(ctx context.Context, id string) (*response_models.QuizSessionResponse, error)) {
	session, err := op(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "")
}

// CaptureEmail godoc
// @Summary Email the quiz results
// @Description Saves the lead, mails the plan and returns the session to landing
// @Tags Quiz
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request_models.EmailRequest true "Email"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /quiz/sessions/{id}/email [post]
func (q *QuizController) CaptureEmail(c *gin.Context) {
	var req request_models.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "A valid email is required")
		return
	}

	result, err := q.quizService.CaptureEmail(c.Request.Context(), c.Param("id"), req.Email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, result, "Your plan is on its way")
}

func (q *QuizController) JoinWaitlist(c *gin.Context) {
	var req request_models.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "A valid email is required")
		return
	}

	if err := q.quizService.JoinWaitlist(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, nil, "You're on the list")
}

func (q *QuizController) Options(c *gin.Context) {
	utils.RespondSuccess(c, q.quizService.Options(), "")
}
