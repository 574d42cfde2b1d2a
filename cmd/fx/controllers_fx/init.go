package controllers_fx

import (
	"go.uber.org/fx"

	"youngeru/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewQuizController),
	fx.Provide(controllers.NewPlannerController),
	fx.Provide(controllers.NewHabitController),
	fx.Provide(controllers.NewCommunityController),
	fx.Provide(controllers.NewLibraryController),
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewAdminController))
