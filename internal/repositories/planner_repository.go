package repositories

import (
	"context"

	"gorm.io/gorm"

	"youngeru/internal/models/db_models"
)

type PlannerRepositoryInterface interface {
	Create(ctx context.Context, session *db_models.PlannerSession) error
	ListByUser(ctx context.Context, userID string, limit int) ([]db_models.PlannerSession, error)
}

type PlannerRepository struct {
	db *gorm.DB
}

func NewPlannerRepository(db *gorm.DB) *PlannerRepository {
	return &PlannerRepository{db: db}
}

func (r *PlannerRepository) Create(ctx context.Context, session *db_models.PlannerSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *PlannerRepository) ListByUser(ctx context.Context, userID string, limit int) ([]db_models.PlannerSession, error) {
	var sessions []db_models.PlannerSession
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}
