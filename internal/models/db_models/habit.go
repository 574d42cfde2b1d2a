package db_models

import "github.com/google/uuid"

type HabitSchedule struct {
	Type string `json:"type"`
}

type Habit struct {
	BaseModel
	UserID       uuid.UUID     `gorm:"type:uuid;index;not null"`
	Title        string        `gorm:"not null"`
	Schedule     HabitSchedule `gorm:"type:jsonb;serializer:json"`
	ReminderTime *string
	Logs         []HabitLog
}

// HabitLog records whether a habit was done on a calendar day (YYYY-MM-DD).
type HabitLog struct {
	BaseModel
	HabitID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_habit_day"`
	UserID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Date    string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_habit_day"`
	Done    bool      `gorm:"not null;default:false"`
}
