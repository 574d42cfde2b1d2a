package repositories

import (
	"context"
	"errors"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"youngeru/internal/models/db_models"
)

type LibraryRepositoryInterface interface {
	ListItems(ctx context.Context) ([]db_models.LibraryItem, error)
	GetBySlug(ctx context.Context, slug string) (*db_models.LibraryItem, error)
	// Similar orders items by cosine distance to vec, skipping excludeID.
	Similar(ctx context.Context, vec pgvector.Vector, excludeID string, limit int) ([]db_models.LibraryItem, error)
	Upsert(ctx context.Context, item *db_models.LibraryItem) error
}

type LibraryRepository struct {
	db *gorm.DB
}

func NewLibraryRepository(db *gorm.DB) *LibraryRepository {
	return &LibraryRepository{db: db}
}

func (r *LibraryRepository) ListItems(ctx context.Context) ([]db_models.LibraryItem, error) {
	var items []db_models.LibraryItem
	err := r.db.WithContext(ctx).
		Omit("embedding").
		Order("updated_at DESC").
		Find(&items).Error
	return items, err
}

func (r *LibraryRepository) GetBySlug(ctx context.Context, slug string) (*db_models.LibraryItem, error) {
	var item db_models.LibraryItem
	err := r.db.WithContext(ctx).First(&item, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *LibraryRepository) Similar(ctx context.Context, vec pgvector.Vector, excludeID string, limit int) ([]db_models.LibraryItem, error) {
	var items []db_models.LibraryItem
	err := r.db.WithContext(ctx).
		Omit("embedding").
		Where("embedding IS NOT NULL AND id <> ?", excludeID).
		Clauses(clause.OrderBy{
			Expression: clause.Expr{SQL: "embedding <=> ?", Vars: []interface{}{vec}},
		}).
		Limit(limit).
		Find(&items).Error
	return items, err
}

// Upsert inserts or refreshes an item keyed by slug.
func (r *LibraryRepository) Upsert(ctx context.Context, item *db_models.LibraryItem) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "category", "evidence_level", "summary", "how_to_take",
			"guardrails", "tags", "embedding", "updated_at",
		}),
	}).Create(item).Error
}
