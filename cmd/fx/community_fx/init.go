package community_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"youngeru/internal/repositories"
	"youngeru/internal/services"
)

var Module = fx.Provide(provideQuestionRepo, services.NewCommunityService)

func provideQuestionRepo(db *gorm.DB) repositories.QuestionRepositoryInterface {
	return repositories.NewQuestionRepository(db)
}
