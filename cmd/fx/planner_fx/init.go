package planner_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"youngeru/internal/repositories"
	"youngeru/internal/services"
)

var Module = fx.Provide(providePlannerRepo, providePlannerService)

func providePlannerRepo(db *gorm.DB) repositories.PlannerRepositoryInterface {
	return repositories.NewPlannerRepository(db)
}

func providePlannerService(repo repositories.PlannerRepositoryInterface, log *zap.Logger) services.PlannerServiceInterface {
	return services.NewPlannerService(repo, log.Named("planner"))
}
