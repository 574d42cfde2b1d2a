package quiz_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"youngeru/internal/config"
	"youngeru/internal/metrics"
	"youngeru/internal/quiz"
	"youngeru/internal/repositories"
	"youngeru/internal/services"
	mem "youngeru/pkg/memcache"
)

var Module = fx.Provide(
	provideEngine,
	provideLeadRepo,
	provideQuizService,
	provideExportService,
)

func provideEngine() quiz.Recommender {
	return quiz.DefaultEngine()
}

// provideLeadRepo picks the lead sink from LEAD_SINK.
func provideLeadRepo(cfg *config.Config, db *gorm.DB, log *zap.Logger) (repositories.LeadRepositoryInterface, error) {
	if cfg.Leads.Sink == "supabase" {
		log.Info("leads are written to supabase")
		return repositories.NewSupabaseLeadRepository(cfg.Supabase.URL, cfg.Supabase.Key)
	}
	return repositories.NewLeadRepository(db), nil
}

func provideQuizService(
	store mem.SessionStore,
	engine quiz.Recommender,
	leads repositories.LeadRepositoryInterface,
	mailer services.IMailService,
	m *metrics.Metrics,
	log *zap.Logger,
) services.QuizServiceInterface {
	return services.NewQuizService(store, engine, leads, mailer, m, log.Named("quiz"))
}

func provideExportService(leads repositories.LeadRepositoryInterface) services.ExportServiceInterface {
	return services.NewExportService(leads)
}
