package repositories

import (
	"context"

	"gorm.io/gorm"

	"youngeru/internal/models/db_models"
)

// LeadRepositoryInterface is implemented by the postgres table and the
// supabase mirror.
type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *db_models.Lead) error
	ListAll(ctx context.Context) ([]db_models.Lead, error)
}

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *db_models.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *LeadRepository) ListAll(ctx context.Context) ([]db_models.Lead, error) {
	var leads []db_models.Lead
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&leads).Error
	return leads, err
}
