package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"youngeru/cmd/fx/account_fx"
	"youngeru/cmd/fx/chat_fx"
	"youngeru/cmd/fx/community_fx"
	"youngeru/cmd/fx/controllers_fx"
	"youngeru/cmd/fx/core_fx"
	"youngeru/cmd/fx/db_fx"
	"youngeru/cmd/fx/habit_fx"
	"youngeru/cmd/fx/library_fx"
	"youngeru/cmd/fx/mail_fx"
	"youngeru/cmd/fx/memcache_fx"
	"youngeru/cmd/fx/planner_fx"
	"youngeru/cmd/fx/quiz_fx"
	"youngeru/internal/api"
	"youngeru/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		app := fx.New(
			fx.Supply(cfg, log),
			fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
				return &fxevent.ZapLogger{Logger: log.Named("fx")}
			}),
			core_fx.Module,
			db_fx.Module,
			memcache_fx.Module,
			mail_fx.Module,
			account_fx.Module,
			quiz_fx.Module,
			planner_fx.Module,
			habit_fx.Module,
			community_fx.Module,
			chat_fx.Module,
			library_fx.Module,
			controllers_fx.Module,

			fx.Provide(api.NewRouter),
			fx.Invoke(StartServer),
		)
		app.Run()
		return app.Err()
	},
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
