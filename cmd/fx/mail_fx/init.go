package mail_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"youngeru/internal/config"
	"youngeru/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *config.Config, log *zap.Logger) services.IMailService {
	if !cfg.SMTP.Enabled() {
		log.Warn("SMTP not configured, emails will be skipped")
	}
	return services.NewMailService(cfg.SMTP, log.Named("mail"))
}
