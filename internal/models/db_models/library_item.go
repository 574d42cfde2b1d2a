package db_models

import (
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

type LibraryItem struct {
	BaseModel
	Slug          string           `gorm:"uniqueIndex;not null"`
	Title         string           `gorm:"not null"`
	Category      string           `gorm:"index"`
	EvidenceLevel string           `gorm:"type:char(1)"`
	Summary       string           `gorm:"type:text"`
	HowToTake     string           `gorm:"type:text"`
	Guardrails    string           `gorm:"type:text"`
	Tags          pq.StringArray   `gorm:"type:text[]"`
	Embedding     *pgvector.Vector `gorm:"type:vector(1536)"`
}
