package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Question struct {
	BaseModel
	UserID  uuid.UUID      `gorm:"type:uuid;index;not null"`
	Title   string         `gorm:"not null"`
	Body    string         `gorm:"type:text;not null"`
	Tags    pq.StringArray `gorm:"type:text[]"`
	Author  Account        `gorm:"foreignKey:UserID"`
	Answers []Answer
}

type Answer struct {
	BaseModel
	QuestionID uuid.UUID `gorm:"type:uuid;index;not null"`
	UserID     uuid.UUID `gorm:"type:uuid;not null"`
	Body       string    `gorm:"type:text;not null"`
	Author     Account   `gorm:"foreignKey:UserID"`
}
