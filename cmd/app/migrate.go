package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"youngeru/internal/infra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		db, err := infra.InitPostgresql(cfg)
		if err != nil {
			return err
		}
		defer infra.ClosePostgresql(db, log)

		if err := infra.AutoMigrate(cmd.Context(), db); err != nil {
			return err
		}
		log.Info("schema migrated", zap.String("env", cfg.Environment))
		return nil
	},
}
