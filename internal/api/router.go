package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"youngeru/internal/api/controllers"
	"youngeru/internal/config"
	"youngeru/internal/metrics"
	"youngeru/internal/models/db_models"
	"youngeru/pkg/logger"
	"youngeru/pkg/middleware"
	"youngeru/pkg/utils"
)

type Controllers struct {
	fx.In

	Account   *controllers.AccountController
	Quiz      *controllers.QuizController
	Planner   *controllers.PlannerController
	Habit     *controllers.HabitController
	Community *controllers.CommunityController
	Library   *controllers.LibraryController
	Chat      *controllers.ChatController
	Admin     *controllers.AdminController
}

func NewRouter(cfg *config.Config, log *zap.Logger, m *metrics.Metrics, jwt *utils.JWTManager, ctrl Controllers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(logger.GinLogger(log))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(m.Middleware())

	RegisterRoutes(r, jwt, m, ctrl)
	return r
}

func RegisterRoutes(r *gin.Engine, jwt *utils.JWTManager, m *metrics.Metrics, ctrl Controllers) {
	auth := middleware.JWTAuthMiddleware(jwt)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", m.Handler())

	accounts := r.Group("/accounts")
	accounts.POST("/register", ctrl.Account.Register)
	accounts.POST("/login", ctrl.Account.Login)
	accounts.GET("/me", auth, ctrl.Account.Me)

	quizGroup := r.Group("/quiz")
	quizGroup.GET("/options", ctrl.Quiz.Options)
	quizGroup.POST("/sessions", ctrl.Quiz.StartSession)
	quizGroup.GET("/sessions/:id", ctrl.Quiz.GetSession)
	quizGroup.PUT("/sessions/:id/answers", ctrl.Quiz.SetAnswer)
	quizGroup.POST("/sessions/:id/advance", ctrl.Quiz.Advance)
	quizGroup.POST("/sessions/:id/retreat", ctrl.Quiz.Retreat)
	quizGroup.POST("/sessions/:id/reset", ctrl.Quiz.Reset)
	quizGroup.POST("/sessions/:id/email", ctrl.Quiz.CaptureEmail)
	r.POST("/waitlist", ctrl.Quiz.JoinWaitlist)

	plannerGroup := r.Group("/planner", auth)
	plannerGroup.POST("/plan", ctrl.Planner.CreatePlan)
	plannerGroup.GET("/sessions", ctrl.Planner.ListSessions)

	habits := r.Group("/habits", auth)
	habits.GET("", ctrl.Habit.ListHabits)
	habits.POST("", ctrl.Habit.CreateHabit)
	habits.POST("/:id/toggle", ctrl.Habit.ToggleToday)

	community := r.Group("/community/questions")
	community.GET("", ctrl.Community.ListQuestions)
	community.GET("/:id", ctrl.Community.GetQuestion)
	community.POST("", auth, ctrl.Community.AskQuestion)
	community.POST("/:id/answers", auth, ctrl.Community.AnswerQuestion)

	library := r.Group("/library")
	library.GET("", ctrl.Library.ListItems)
	library.GET("/:slug", ctrl.Library.GetItem)
	library.GET("/:slug/similar", ctrl.Library.SimilarItems)

	r.POST("/ai/chat", middleware.OptionalJWTMiddleware(jwt), ctrl.Chat.Chat)

	admin := r.Group("/admin", auth, middleware.RoleMiddleware(db_models.RoleAdmin))
	admin.GET("/leads/export", ctrl.Admin.ExportLeads)
}
