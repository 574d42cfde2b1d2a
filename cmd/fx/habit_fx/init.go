package habit_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"youngeru/internal/repositories"
	"youngeru/internal/services"
)

var Module = fx.Provide(provideHabitRepo, services.NewHabitService)

func provideHabitRepo(db *gorm.DB) repositories.HabitRepositoryInterface {
	return repositories.NewHabitRepository(db)
}
