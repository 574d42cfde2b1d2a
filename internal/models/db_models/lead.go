package db_models

import "youngeru/internal/quiz"

const (
	LeadSourceQuiz     = "quiz"
	LeadSourceWaitlist = "waitlist"
)

// Lead is an email captured from the quiz results or the landing waitlist.
type Lead struct {
	BaseModel
	Email           string                `gorm:"index;not null" json:"email"`
	Source          string                `gorm:"not null" json:"source"`
	SessionID       string                `json:"session_id,omitempty"`
	Answers         *quiz.Answers         `gorm:"type:jsonb;serializer:json" json:"answers,omitempty"`
	Recommendations []quiz.Recommendation `gorm:"type:jsonb;serializer:json" json:"recommendations,omitempty"`
}
