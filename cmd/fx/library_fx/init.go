package library_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"youngeru/internal/repositories"
	"youngeru/internal/services"
	"youngeru/pkg/utils"
)

var Module = fx.Provide(provideLibraryRepo, provideLibraryService)

func provideLibraryRepo(db *gorm.DB) repositories.LibraryRepositoryInterface {
	return repositories.NewLibraryRepository(db)
}

func provideLibraryService(repo repositories.LibraryRepositoryInterface, embedder utils.EmbeddingClientInterface, log *zap.Logger) services.LibraryServiceInterface {
	return services.NewLibraryService(repo, embedder, log.Named("library"))
}
