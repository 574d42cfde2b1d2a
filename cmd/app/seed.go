package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"youngeru/cmd/fx/chat_fx"
	"youngeru/internal/infra"
	"youngeru/internal/repositories"
	"youngeru/internal/seed"
	"youngeru/internal/services"
	"youngeru/pkg/utils"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the supplement library catalog",
	Long: `Upserts the library catalog by slug. Items are embedded for similarity
search when an LLM api key is configured.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		entries, err := loadSeedEntries()
		if err != nil {
			return err
		}

		db, err := infra.InitPostgresql(cfg)
		if err != nil {
			return err
		}
		defer infra.ClosePostgresql(db, log)

		_, embedder, err := utils.NewLLMClients(cmd.Context(), chat_fx.LLMOptions(cfg.LLM))
		if err != nil {
			return err
		}
		if g, ok := embedder.(*utils.GeminiClient); ok {
			defer g.Close()
		}

		library := services.NewLibraryService(repositories.NewLibraryRepository(db), embedder, log)
		n, err := library.Seed(cmd.Context(), entries)
		if err != nil {
			return fmt.Errorf("seed library after %d items: %w", n, err)
		}
		log.Info("seed complete", zap.Int("items", n))
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML catalog to load instead of the built-in one")
}

func loadSeedEntries() ([]seed.LibraryEntry, error) {
	if seedFile == "" {
		return seed.Library()
	}
	data, err := os.ReadFile(seedFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", seedFile, err)
	}
	return seed.ParseLibrary(data)
}
