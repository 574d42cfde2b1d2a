package infra

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"youngeru/internal/config"
	"youngeru/internal/models/db_models"
)

var ErrNoPostgresURL = errors.New("POSTGRES_URL is not set")

func InitPostgresql(cfg *config.Config) (*gorm.DB, error) {
	if cfg.PostgresURL == "" {
		return nil, ErrNoPostgresURL
	}

	gormCfg := &gorm.Config{}
	if cfg.IsProduction() {
		gormCfg.Logger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return db, nil
}

// AutoMigrate creates the vector extension and every table.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return fmt.Errorf("create vector extension: %w", err)
	}
	return db.WithContext(ctx).AutoMigrate(
		&db_models.Account{},
		&db_models.Lead{},
		&db_models.PlannerSession{},
		&db_models.Habit{},
		&db_models.HabitLog{},
		&db_models.Question{},
		&db_models.Answer{},
		&db_models.LibraryItem{},
	)
}

func ClosePostgresql(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Warn("get database handle", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error("close postgres", zap.Error(err))
	} else {
		log.Info("postgres connection closed")
	}
}

// WithTransaction commits when fn returns nil and rolls back otherwise.
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin transaction: %w", tx.Error)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}
	return tx.Commit().Error
}
