package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"youngeru/internal/config"
	"youngeru/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "youngeru",
	Short: "YoungerU onboarding and wellness API",
	Long: `YoungerU serves the onboarding quiz, supplement planner, habits,
community Q&A, the evidence library and the AI assistant.

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads the config and installs the global logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		return nil, nil, err
	}
	zap.ReplaceGlobals(log)
	return cfg, log, nil
}
