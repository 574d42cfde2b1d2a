package db_models

import (
	"github.com/google/uuid"
	"youngeru/internal/planner"
)

type PlannerSession struct {
	BaseModel
	UserID uuid.UUID      `gorm:"type:uuid;index;not null"`
	Inputs planner.Inputs `gorm:"type:jsonb;serializer:json"`
	Output []planner.Item `gorm:"type:jsonb;serializer:json"`
}
